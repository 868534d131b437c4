// Package languages 维护内置的 "语言 -> 文件后缀" 预设。
// 预设只用于展开 --lang 参数，统计本身不区分语言。
package languages

import (
	"fmt"
	"sort"
	"strings"
)

// LanguageDescriptor 描述一个语言预设。
// Extensions 不含点号，并且大小写敏感。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言预设。
type Registry struct {
	languages []LanguageDescriptor
	byName    map[string]LanguageDescriptor
}

// NewRegistry 创建并注册所有内置语言预设。
func NewRegistry() *Registry {
	languages := []LanguageDescriptor{
		{Name: "Go", Extensions: []string{"go"}},
		{Name: "JavaScript", Extensions: []string{"js", "mjs", "cjs", "jsx"}},
		{Name: "TypeScript", Extensions: []string{"ts", "tsx", "mts", "cts"}},
		{Name: "Python", Extensions: []string{"py", "pyi"}},
		{Name: "Rust", Extensions: []string{"rs"}},
		{Name: "Ruby", Extensions: []string{"rb"}},
		{Name: "Java", Extensions: []string{"java"}},
		{Name: "C/C++", Extensions: []string{"c", "h", "cc", "cpp", "cxx", "hpp", "hh", "hxx"}},
		{Name: "SQL", Extensions: []string{"sql"}},
	}

	registry := &Registry{
		languages: languages,
		byName:    make(map[string]LanguageDescriptor, len(languages)),
	}
	for _, item := range languages {
		registry.byName[strings.ToLower(item.Name)] = item
	}
	return registry
}

// Languages 返回按名称排序的预设清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.languages))
	for _, item := range r.languages {
		extensions := append([]string(nil), item.Extensions...)
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       item.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀，名称大小写不敏感。
func (r *Registry) ExtensionsForLanguage(language string) ([]string, bool) {
	item, ok := r.byName[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return nil, false
	}
	return append([]string(nil), item.Extensions...), true
}

// Expand 合并显式后缀与语言预设后缀，去重并保持首次出现的顺序。
func (r *Registry) Expand(extensions []string, languages []string) ([]string, error) {
	seen := make(map[string]struct{})
	result := make([]string, 0, len(extensions))

	add := func(ext string) {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if _, ok := seen[ext]; ok {
			return
		}
		seen[ext] = struct{}{}
		result = append(result, ext)
	}

	for _, ext := range extensions {
		add(ext)
	}
	for _, language := range languages {
		exts, ok := r.ExtensionsForLanguage(language)
		if !ok {
			return nil, fmt.Errorf("unknown language %q, run `srcmetrics language` to list presets", language)
		}
		for _, ext := range exts {
			add(ext)
		}
	}
	return result, nil
}
