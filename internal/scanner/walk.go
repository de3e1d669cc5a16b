package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"codecounter/internal/languages"
	"codecounter/internal/model"
	"codecounter/internal/policy"

	"go.uber.org/zap"
)

// SkipReason 说明一个目录或文件为什么没有参与统计。空字符串表示未跳过。
type SkipReason string

const (
	SkipNone              SkipReason = ""
	SkipHidden            SkipReason = "hidden"
	SkipExcludedDir       SkipReason = "excluded-dir"
	SkipExcludedFilename  SkipReason = "excluded-filename"
	SkipIgnored           SkipReason = "ignored"
	SkipExcludedExtension SkipReason = "excluded-extension"
	SkipTestName          SkipReason = "test-name"
	SkipNotRegular        SkipReason = "not-regular"
	SkipUnreadable        SkipReason = "unreadable"
	SkipEncoding          SkipReason = "encoding"
)

// VisitFunc 接收每个通过过滤的文件。返回错误会中止遍历。
type VisitFunc func(file model.AcceptedFile) error

// Walk 深度优先遍历 root，父目录先于子目录。
// 被排除的目录在进入前就被剪枝，不会读取其中任何内容。
func (s *Service) Walk(ctx context.Context, root string, ignore policy.IgnorePatterns, visit VisitFunc) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// 子目录无法读取时跳过，不影响其它目录。
			s.logger.Debug("skip unreadable entry", zap.String("path", path), zap.Error(walkErr))
			return nil
		}

		if path == root {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		if entry.IsDir() {
			if reason := s.DirSkipReason(entry.Name(), relativePath, ignore); reason != SkipNone {
				s.logger.Debug("prune directory", zap.String("path", relativePath), zap.String("reason", string(reason)))
				return filepath.SkipDir
			}
			return nil
		}

		if reason := s.FileSkipReason(entry.Name(), relativePath, ignore); reason != SkipNone {
			s.logger.Debug("skip file", zap.String("path", relativePath), zap.String("reason", string(reason)))
			return nil
		}

		info, ok := s.fileInfo(path, entry)
		if !ok {
			return nil
		}

		return visit(model.AcceptedFile{
			Path:      filepath.ToSlash(relativePath),
			AbsPath:   path,
			Extension: languages.Extension(entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	})
}

// DirSkipReason 判断子目录是否需要在进入前剪枝。
func (s *Service) DirSkipReason(name string, relativePath string, ignore policy.IgnorePatterns) SkipReason {
	switch {
	case policy.IsHidden(name):
		return SkipHidden
	case s.rules.ExcludesDir(name):
		return SkipExcludedDir
	case ignore.Match(relativePath):
		return SkipIgnored
	default:
		return SkipNone
	}
}

// FileSkipReason 按固定顺序检查文件过滤规则。
func (s *Service) FileSkipReason(name string, relativePath string, ignore policy.IgnorePatterns) SkipReason {
	switch {
	case policy.IsHidden(name):
		return SkipHidden
	case s.rules.ExcludesFilename(name):
		return SkipExcludedFilename
	case ignore.Match(relativePath):
		return SkipIgnored
	case s.rules.ExcludesExtension(name):
		return SkipExcludedExtension
	case policy.LooksLikeTest(name):
		return SkipTestName
	default:
		return SkipNone
	}
}

// fileInfo 获取文件元信息。
// 符号链接按目标解析，指向目录或已失效的链接直接跳过；文件在扫描中途消失同样跳过。
func (s *Service) fileInfo(path string, entry fs.DirEntry) (fs.FileInfo, bool) {
	var (
		info fs.FileInfo
		err  error
	)
	if entry.Type().IsRegular() {
		info, err = entry.Info()
	} else {
		info, err = os.Stat(path)
	}
	if err != nil {
		s.logger.Debug("skip file", zap.String("path", path), zap.String("reason", string(SkipUnreadable)), zap.Error(err))
		return nil, false
	}
	if !info.Mode().IsRegular() {
		s.logger.Debug("skip file", zap.String("path", path), zap.String("reason", string(SkipNotRegular)))
		return nil, false
	}
	return info, true
}
