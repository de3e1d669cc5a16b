// Package model 定义扫描器与输出层共享的核心数据模型。
package model

import (
	"sort"
	"time"
)

// AcceptedFile 表示通过全部过滤规则的文件，无论后缀是否可识别。
type AcceptedFile struct {
	// Path 是相对扫描根目录的路径，统一使用 / 分隔。
	Path string
	// AbsPath 是文件的绝对路径，仅用于读取内容。
	AbsPath string
	// Extension 是小写的最后一段后缀（含点号），没有后缀时为空。
	Extension string
	Size      int64
	ModTime   time.Time
}

// FileRecord 是详细模式下保留的单文件记录。
type FileRecord struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
	Language string    `json:"language"`
	Lines    int64     `json:"lines"`
}

// LanguageStat 是某个语言的累计值。
type LanguageStat struct {
	Language string `json:"language"`
	Lines    int64  `json:"lines"`
	Files    int64  `json:"files"`
	Bytes    int64  `json:"bytes"`
}

// ScanResult 是一次扫描的完整结果，也是输出层唯一的输入。
//
// 注意：Fold 会直接修改结果，ScanResult 不支持多个 goroutine 并发写入，
// 需要并发累加时请在外部加锁。
type ScanResult struct {
	ScannedPath string
	Detailed    bool
	TotalFiles  int64
	TotalBytes  int64
	Languages   map[string]*LanguageStat
	Files       []FileRecord
}

// NewScanResult 创建一个空结果。detailed 为 true 时会保留单文件记录。
func NewScanResult(scannedPath string, detailed bool) *ScanResult {
	return &ScanResult{
		ScannedPath: scannedPath,
		Detailed:    detailed,
		Languages:   make(map[string]*LanguageStat),
		Files:       make([]FileRecord, 0),
	}
}

// Fold 把一个已接受文件累加到结果中。
// known 为 false 表示后缀不可识别：只计入总文件数与总字节数。
func (r *ScanResult) Fold(file AcceptedFile, lines int64, language string, known bool) {
	r.TotalFiles++
	r.TotalBytes += file.Size

	if !known {
		return
	}

	stat, ok := r.Languages[language]
	if !ok {
		stat = &LanguageStat{Language: language}
		r.Languages[language] = stat
	}
	stat.Lines += lines
	stat.Files++
	stat.Bytes += file.Size

	if r.Detailed {
		r.Files = append(r.Files, FileRecord{
			Path:     file.Path,
			Size:     file.Size,
			ModTime:  file.ModTime,
			Language: language,
			Lines:    lines,
		})
	}
}

// TotalLines 返回所有语言的代码行数之和。
func (r *ScanResult) TotalLines() int64 {
	var total int64
	for _, stat := range r.Languages {
		total += stat.Lines
	}
	return total
}

// LanguageFiles 返回被识别为某种语言的文件数之和，不超过 TotalFiles。
func (r *ScanResult) LanguageFiles() int64 {
	var total int64
	for _, stat := range r.Languages {
		total += stat.Files
	}
	return total
}

// OrderedLanguages 返回报表展示顺序的语言列表：
// 先是 priority 中存在且行数大于 0 的语言（按声明顺序），
// 再是其余语言，按标签字典序升序。
func (r *ScanResult) OrderedLanguages(priority []string) []LanguageStat {
	result := make([]LanguageStat, 0, len(r.Languages))
	prioritized := make(map[string]struct{}, len(priority))

	for _, language := range priority {
		prioritized[language] = struct{}{}
		if stat, ok := r.Languages[language]; ok && stat.Lines > 0 {
			result = append(result, *stat)
		}
	}

	rest := make([]LanguageStat, 0, len(r.Languages))
	for language, stat := range r.Languages {
		if _, ok := prioritized[language]; ok {
			continue
		}
		rest = append(rest, *stat)
	}
	sort.Slice(rest, func(i int, j int) bool {
		return rest[i].Language < rest[j].Language
	})

	return append(result, rest...)
}

// SortedFiles 返回按路径排序的单文件记录副本。
func (r *ScanResult) SortedFiles() []FileRecord {
	files := append([]FileRecord(nil), r.Files...)
	sort.Slice(files, func(i int, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}
