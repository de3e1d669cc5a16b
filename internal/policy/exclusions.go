// Package policy 定义扫描时的过滤规则：排除目录、排除后缀、排除文件名与忽略模式。
// 所有规则在构造后只读，由调用方显式传入扫描器。
package policy

import (
	"path"
	"strings"
)

// HiddenMarker 是隐藏文件/目录名的前缀字符。
const HiddenMarker = "."

// testNameMarkers 出现在文件名（不区分大小写）中即视为测试文件。
var testNameMarkers = []string{"test", "spec"}

// ExclusionRules 是三组互相独立的排除集合。
type ExclusionRules struct {
	dirs       map[string]struct{}
	filenames  map[string]struct{}
	extensions map[string]struct{}
	// extensionGlobs 保存含通配符的后缀条目，例如 .generated.*
	extensionGlobs []string
}

// NewExclusionRules 创建排除规则。
// 目录名与文件名精确匹配；后缀统一转为小写，可以是 .log 这样的单段后缀，
// 也可以是 .min.js 这样的多段后缀，含 * 的条目按通配符匹配。
func NewExclusionRules(dirs []string, extensions []string, filenames []string) ExclusionRules {
	rules := ExclusionRules{
		dirs:       toSet(dirs),
		filenames:  toSet(filenames),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if strings.ContainsAny(ext, "*?[") {
			rules.extensionGlobs = append(rules.extensionGlobs, ext)
			continue
		}
		rules.extensions[ext] = struct{}{}
	}
	return rules
}

// DefaultExclusionRules 返回内置排除规则。
func DefaultExclusionRules() ExclusionRules {
	return NewExclusionRules(defaultExcludedDirs, defaultExcludedExtensions, defaultExcludedFilenames)
}

// ExcludesDir 判断目录名（叶子名，不是完整路径）是否被排除。
func (r ExclusionRules) ExcludesDir(name string) bool {
	_, ok := r.dirs[name]
	return ok
}

// ExcludesFilename 判断文件名是否在排除文件名集合中。
func (r ExclusionRules) ExcludesFilename(name string) bool {
	_, ok := r.filenames[name]
	return ok
}

// ExcludesExtension 判断文件名的任意点分尾段是否命中排除后缀。
// 例如 app.min.js 会依次检查 .js 与 .min.js。
func (r ExclusionRules) ExcludesExtension(name string) bool {
	for _, suffix := range dottedSuffixes(strings.ToLower(name)) {
		if _, ok := r.extensions[suffix]; ok {
			return true
		}
		for _, pattern := range r.extensionGlobs {
			if matched, err := path.Match(pattern, suffix); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// IsHidden 判断名称是否以隐藏前缀开头。
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenMarker)
}

// LooksLikeTest 判断文件名是否包含 test 或 spec（不区分大小写）。
func LooksLikeTest(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range testNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// dottedSuffixes 返回文件名所有点分尾段，由短到长。
// 开头的点不参与切分，.env 没有尾段，a.b.c 返回 [.c .b.c]。
func dottedSuffixes(name string) []string {
	trimmed := strings.TrimLeft(name, ".")
	offset := len(name) - len(trimmed)

	var suffixes []string
	for i := len(trimmed) - 1; i > 0; i-- {
		if trimmed[i] == '.' {
			suffixes = append(suffixes, name[offset+i:])
		}
	}
	return suffixes
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
