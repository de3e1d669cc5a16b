package scanner

import (
	"errors"
	"os"

	"codecounter/internal/languages"
	"codecounter/internal/model"
)

// FileOutcome 是单个已接受文件的处理结果：要么带行数成功，要么带跳过原因。
type FileOutcome struct {
	Language string
	// Known 表示后缀在语言目录中存在。
	Known bool
	Lines int64
	Skip  SkipReason
	Err   error
}

// Skipped 返回该文件是否应当被完全忽略（不计入任何统计）。
func (o FileOutcome) Skipped() bool {
	return o.Skip != SkipNone
}

// Classify 识别文件语言并统计代码行数。
// 未识别后缀的文件不会被打开；文件打开、读取或解码失败时返回跳过结果。
func (s *Service) Classify(file model.AcceptedFile) FileOutcome {
	language, ok := s.catalog.LanguageFor(file.Extension)
	if !ok {
		return FileOutcome{}
	}

	handle, openErr := os.Open(file.AbsPath)
	if openErr != nil {
		return FileOutcome{Language: language, Known: true, Skip: SkipUnreadable, Err: openErr}
	}

	lines, countErr := languages.CountReader(handle, file.Extension, s.catalog)
	closeErr := handle.Close()

	if countErr != nil {
		reason := SkipUnreadable
		if errors.Is(countErr, languages.ErrInvalidEncoding) {
			reason = SkipEncoding
		}
		return FileOutcome{Language: language, Known: true, Skip: reason, Err: countErr}
	}
	if closeErr != nil {
		return FileOutcome{Language: language, Known: true, Skip: SkipUnreadable, Err: closeErr}
	}

	return FileOutcome{Language: language, Known: true, Lines: lines}
}
