// Package scanner 提供目录遍历、过滤与统计调度能力。
// 该层负责决定哪些文件参与统计并把结果累加到 ScanResult，不负责行分类细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"codecounter/internal/languages"
	"codecounter/internal/model"
	"codecounter/internal/policy"

	"go.uber.org/zap"
)

var (
	// ErrRootNotFound 表示扫描根目录不存在。
	ErrRootNotFound = errors.New("scan root does not exist")
	// ErrRootNotDirectory 表示扫描根路径不是目录。
	ErrRootNotDirectory = errors.New("scan root is not a directory")
)

// Service 是扫描服务对象。
// 语言目录与排除规则在构造时注入，扫描过程中只读。
type Service struct {
	catalog *languages.Catalog
	rules   policy.ExclusionRules
	logger  *zap.Logger
}

// ScanOptions 是单次扫描的可选参数。
type ScanOptions struct {
	// Detailed 为 true 时结果中保留单文件记录。
	Detailed bool
	// IgnoreFile 指定忽略文件路径；为空时读取根目录下的 .codecounterignore。
	IgnoreFile string
	// Ignore 直接指定忽略模式，非 nil 时不再读取任何忽略文件。
	Ignore *policy.IgnorePatterns
}

// NewService 创建扫描服务。logger 为 nil 时不输出日志。
func NewService(catalog *languages.Catalog, rules policy.ExclusionRules, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalog,
		rules:   rules,
		logger:  logger,
	}
}

// ValidateRoot 在遍历前检查根路径，返回其绝对路径。
func ValidateRoot(targetPath string) (string, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return "", errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, trimmedPath)
		}
		return "", fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotDirectory, trimmedPath)
	}
	return absoluteTarget, nil
}

// ScanPath 扫描目录并返回完整结果。
// 根路径无效时直接返回错误；ctx 被取消时中止扫描并丢弃部分结果。
func (s *Service) ScanPath(ctx context.Context, targetPath string, options ScanOptions) (*model.ScanResult, error) {
	root, err := ValidateRoot(targetPath)
	if err != nil {
		return nil, err
	}

	ignore := s.resolveIgnore(root, options)
	result := model.NewScanResult(root, options.Detailed)

	walkErr := s.Walk(ctx, root, ignore, func(file model.AcceptedFile) error {
		outcome := s.Classify(file)
		if outcome.Skipped() {
			s.logger.Debug("skip unreadable file",
				zap.String("path", file.Path),
				zap.String("reason", string(outcome.Skip)),
				zap.Error(outcome.Err),
			)
			return nil
		}
		result.Fold(file, outcome.Lines, outcome.Language, outcome.Known)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	s.logger.Info("scan finished",
		zap.String("root", root),
		zap.Int64("files", result.TotalFiles),
		zap.Int64("lines", result.TotalLines()),
		zap.Int("languages", len(result.Languages)),
	)
	return result, nil
}

// resolveIgnore 决定本次扫描使用的忽略模式。
// 读取忽略文件失败按“没有忽略模式”处理，只记录警告。
func (s *Service) resolveIgnore(root string, options ScanOptions) policy.IgnorePatterns {
	if options.Ignore != nil {
		return *options.Ignore
	}

	var (
		patterns policy.IgnorePatterns
		err      error
	)
	if options.IgnoreFile != "" {
		patterns, err = policy.LoadIgnorePath(options.IgnoreFile)
	} else {
		patterns, err = policy.LoadIgnoreFile(root)
	}
	if err != nil {
		s.logger.Warn("ignore file unreadable, continuing without patterns", zap.Error(err))
		return policy.IgnorePatterns{}
	}
	if patterns.Len() > 0 {
		s.logger.Debug("ignore patterns loaded", zap.Strings("patterns", patterns.Patterns()))
	}
	return patterns
}
