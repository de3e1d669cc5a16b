// Package languages 维护后缀到语言的映射、单行注释前缀表以及行分类规则。
package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// LanguageDescriptor 用于对外展示语言、后缀及注释前缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
	// Markers 与 Extensions 一一对应，没有注释前缀的后缀对应空字符串。
	Markers []string
}

// Catalog 是不可变的语言目录。
// 构造完成后只读，可以被多个扫描服务安全共享。
type Catalog struct {
	languageByExt map[string]string
	markerByExt   map[string]string
}

// NewCatalog 创建内置语言目录。
func NewCatalog() *Catalog {
	return &Catalog{
		languageByExt: builtinLanguages(),
		markerByExt:   builtinCommentMarkers(),
	}
}

// NewCatalogFrom 使用自定义表创建语言目录。
// 后缀统一转为小写，传入的 map 会被复制，后续修改不影响目录。
func NewCatalogFrom(languageByExt map[string]string, markerByExt map[string]string) *Catalog {
	catalog := &Catalog{
		languageByExt: make(map[string]string, len(languageByExt)),
		markerByExt:   make(map[string]string, len(markerByExt)),
	}
	for ext, language := range languageByExt {
		catalog.languageByExt[strings.ToLower(ext)] = language
	}
	for ext, marker := range markerByExt {
		catalog.markerByExt[strings.ToLower(ext)] = marker
	}
	return catalog
}

// LanguageFor 根据后缀（含点号）查找语言标签。
func (c *Catalog) LanguageFor(ext string) (string, bool) {
	language, ok := c.languageByExt[strings.ToLower(ext)]
	return language, ok
}

// LanguageForFile 根据文件名的最后一段后缀查找语言标签。
func (c *Catalog) LanguageForFile(path string) (string, bool) {
	return c.LanguageFor(Extension(path))
}

// CommentMarker 返回后缀对应的单行注释前缀。
func (c *Catalog) CommentMarker(ext string) (string, bool) {
	marker, ok := c.markerByExt[strings.ToLower(ext)]
	return marker, ok
}

// Languages 返回按语言名排序的语言清单。
func (c *Catalog) Languages() []LanguageDescriptor {
	byName := make(map[string]*LanguageDescriptor)
	for ext, language := range c.languageByExt {
		item, ok := byName[language]
		if !ok {
			item = &LanguageDescriptor{Name: language}
			byName[language] = item
		}
		item.Extensions = append(item.Extensions, ext)
	}

	result := make([]LanguageDescriptor, 0, len(byName))
	for _, item := range byName {
		sort.Strings(item.Extensions)
		item.Markers = make([]string, len(item.Extensions))
		for i, ext := range item.Extensions {
			item.Markers[i] = c.markerByExt[ext]
		}
		result = append(result, *item)
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (c *Catalog) ExtensionsForLanguage(language string) []string {
	var extensions []string
	for ext, name := range c.languageByExt {
		if name == language {
			extensions = append(extensions, ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}

// Extension 返回文件名最后一段小写后缀（含点号）。
// 以点开头且没有其它点的文件名（如 .bashrc）视为没有后缀。
func Extension(path string) string {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	return strings.ToLower(ext)
}
