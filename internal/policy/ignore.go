package policy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gobwas/glob"
)

// IgnoreFileName 是扫描根目录下可选的忽略模式文件名。
const IgnoreFileName = ".codecounterignore"

// ignoreLiteralReplacer 把 shell 通配中按字面处理的字符转义，
// 避免被 glob 库解释为转义符或 {a,b} 分组。
var ignoreLiteralReplacer = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// IgnorePatterns 是有序的忽略模式集合。零值表示没有任何模式。
type IgnorePatterns struct {
	patterns []string
	matchers []glob.Glob
}

// NewIgnorePatterns 编译一组 shell 风格的通配模式。
// * 可以跨越路径分隔符，? 匹配单个字符；无法编译的模式按字面匹配。
func NewIgnorePatterns(patterns []string) IgnorePatterns {
	result := IgnorePatterns{
		patterns: make([]string, 0, len(patterns)),
		matchers: make([]glob.Glob, 0, len(patterns)),
	}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		result.patterns = append(result.patterns, pattern)
		result.matchers = append(result.matchers, compileIgnorePattern(normalizeCase(pattern)))
	}
	return result
}

// ParseIgnorePatterns 从 reader 中读取模式：每行一个，跳过空行与 # 开头的注释行。
func ParseIgnorePatterns(reader io.Reader) (IgnorePatterns, error) {
	var patterns []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return IgnorePatterns{}, fmt.Errorf("read ignore patterns: %w", err)
	}
	return NewIgnorePatterns(patterns), nil
}

// LoadIgnoreFile 读取 dir 下的忽略文件。
// 文件不存在时返回空集合且不报错；其它读取错误返回空集合与错误，
// 调用方应当记录后继续扫描。
func LoadIgnoreFile(dir string) (IgnorePatterns, error) {
	return LoadIgnorePath(filepath.Join(dir, IgnoreFileName))
}

// LoadIgnorePath 读取指定路径的忽略文件，语义同 LoadIgnoreFile。
func LoadIgnorePath(path string) (IgnorePatterns, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return IgnorePatterns{}, nil
		}
		return IgnorePatterns{}, fmt.Errorf("open ignore file: %w", err)
	}
	defer file.Close()

	patterns, err := ParseIgnorePatterns(file)
	if err != nil {
		return IgnorePatterns{}, err
	}
	return patterns, nil
}

// Match 判断相对路径（系统分隔符形式）是否命中任意一个模式。
func (p IgnorePatterns) Match(relPath string) bool {
	if len(p.matchers) == 0 {
		return false
	}
	candidate := normalizeCase(relPath)
	for _, matcher := range p.matchers {
		if matcher.Match(candidate) {
			return true
		}
	}
	return false
}

// Patterns 返回原始模式列表的副本。
func (p IgnorePatterns) Patterns() []string {
	return append([]string(nil), p.patterns...)
}

// Len 返回模式数量。
func (p IgnorePatterns) Len() int {
	return len(p.patterns)
}

func compileIgnorePattern(pattern string) glob.Glob {
	compiled, err := glob.Compile(ignoreLiteralReplacer.Replace(pattern))
	if err == nil {
		return compiled
	}
	return glob.MustCompile(glob.QuoteMeta(pattern))
}

// normalizeCase 在 Windows 上统一转为小写，其它平台区分大小写。
func normalizeCase(value string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(value)
	}
	return value
}
