// Package report 提供 codecounter 的输出能力。
// 支持控制台表格、JSON、HTML 与纯文本日志四种格式，全部只消费 Summary。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"codecounter/internal/model"

	"github.com/dustin/go-humanize"
)

// 支持的输出格式。
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHTML  = "html"
	FormatLog   = "log"
)

// Formats 返回全部支持的格式名称。
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatHTML, FormatLog}
}

// ParseFormat 校验并规范化格式名称。
func ParseFormat(value string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(value))
	for _, item := range Formats() {
		if item == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q, allowed values: %s", value, strings.Join(Formats(), ", "))
}

// Summary 是报表的统一视图：语言已按展示顺序排列，文件已按路径排序。
type Summary struct {
	ScannedPath string               `json:"scanned_path"`
	GeneratedAt time.Time            `json:"generated_at"`
	Languages   []model.LanguageStat `json:"languages"`
	TotalLines  int64                `json:"total_lines"`
	TotalFiles  int64                `json:"total_files"`
	TotalBytes  int64                `json:"total_bytes"`
	Detailed    bool                 `json:"detailed"`
	Files       []model.FileRecord   `json:"files,omitempty"`
}

// NewSummary 从扫描结果构建报表视图。
func NewSummary(result *model.ScanResult, priority []string, generatedAt time.Time) Summary {
	summary := Summary{
		ScannedPath: result.ScannedPath,
		GeneratedAt: generatedAt,
		Languages:   result.OrderedLanguages(priority),
		TotalLines:  result.TotalLines(),
		TotalFiles:  result.TotalFiles,
		TotalBytes:  result.TotalBytes,
		Detailed:    result.Detailed,
	}
	if result.Detailed {
		summary.Files = result.SortedFiles()
	}
	return summary
}

// Render 按格式把报表写到 writer。
func Render(writer io.Writer, format string, summary Summary) error {
	switch format {
	case FormatTable:
		return PrintTable(writer, summary)
	case FormatJSON:
		return PrintJSON(writer, summary)
	case FormatHTML:
		return RenderHTML(writer, summary)
	case FormatLog:
		return RenderLog(writer, summary)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// FormatSize 把字节数转换为易读形式，例如 1.2 kB。
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// PrintTable 使用对齐表格展示统计结果，最后一行为总计。
func PrintTable(writer io.Writer, summary Summary) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", summary.ScannedPath); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "LANGUAGE\tLINES\tFILES\tSIZE"); err != nil {
		return err
	}
	for _, item := range summary.Languages {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%s\n",
			item.Language,
			item.Lines,
			item.Files,
			FormatSize(item.Bytes),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%d\t%d\t%s\n",
		summary.TotalLines,
		summary.TotalFiles,
		FormatSize(summary.TotalBytes),
	); err != nil {
		return err
	}

	if summary.Detailed && len(summary.Files) > 0 {
		if _, err := fmt.Fprintln(tw, "\nFILE\tLANGUAGE\tLINES\tSIZE"); err != nil {
			return err
		}
		for _, item := range summary.Files {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.Path, item.Language, item.Lines, FormatSize(item.Size)); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// PrintJSON 把报表按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, summary Summary) error {
	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteFile 把指定格式的报表写入 path。
// 如果目录不存在会自动创建。
func WriteFile(path string, format string, summary Summary) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	renderErr := Render(file, format, summary)
	closeErr := file.Close()
	if renderErr != nil {
		return fmt.Errorf("write output file: %w", renderErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close output file: %w", closeErr)
	}
	return nil
}

// TimestampedName 生成带时间戳的报表文件名，例如 code_report_20240102_150405.html。
func TimestampedName(prefix string, format string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), format)
}
