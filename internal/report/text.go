package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderLog 输出纯文本日志格式的报表，适合归档保存。
func RenderLog(writer io.Writer, summary Summary) error {
	separator := strings.Repeat("-", 60)

	if _, err := fmt.Fprintf(
		writer,
		"代码统计报告\n扫描目录: %s\n生成时间: %s\n%s\n",
		summary.ScannedPath,
		summary.GeneratedAt.Format("2006-01-02 15:04:05"),
		separator,
	); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "语言\t行数\t文件数\t大小"); err != nil {
		return err
	}
	for _, item := range summary.Languages {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", item.Language, item.Lines, item.Files, FormatSize(item.Bytes)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "总计\t%d\t%d\t%s\n", summary.TotalLines, summary.TotalFiles, FormatSize(summary.TotalBytes)); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !summary.Detailed {
		return nil
	}

	if _, err := fmt.Fprintf(writer, "%s\n文件明细 (%d)\n", separator, len(summary.Files)); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	for _, item := range summary.Files {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%s\t%s\n",
			item.Path,
			item.Language,
			item.Lines,
			FormatSize(item.Size),
			item.ModTime.Format("2006-01-02 15:04:05"),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
