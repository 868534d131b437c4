// Package config 负责加载 srcmetrics 的可选配置文件。
// 命令行参数优先于配置文件，配置文件优先于内置默认值。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config 是全部可配置项。
type Config struct {
	// 需要统计的文件后缀，不含点号，大小写敏感
	Extensions []string `koanf:"extensions"`

	// 语言预设名称，会展开为对应后缀
	Languages []string `koanf:"languages"`

	// 遍历时跳过的目录名
	ExcludeDirs []string `koanf:"exclude_dirs"`

	Workers int          `koanf:"workers"`
	Output  OutputConfig `koanf:"output"`
}

// OutputConfig 控制输出行为。
type OutputConfig struct {
	Format   string `koanf:"format"` // text, table, json
	File     string `koanf:"file"`   // json 导出路径，空表示不导出
	Color    bool   `koanf:"color"`
	Progress bool   `koanf:"progress"`
}

// DefaultConfig 返回内置默认配置。
func DefaultConfig() *Config {
	return &Config{
		Extensions:  []string{},
		Languages:   []string{},
		ExcludeDirs: []string{},
		Workers:     runtime.NumCPU(),
		Output: OutputConfig{
			Format:   "text",
			Color:    true,
			Progress: false,
		},
	}
}

// configNames 是在工作目录中依次查找的配置文件名。
var configNames = []string{
	"srcmetrics.toml",
	"srcmetrics.yaml",
	"srcmetrics.yml",
	"srcmetrics.json",
	".srcmetrics.toml",
	".srcmetrics.yaml",
	".srcmetrics.yml",
	".srcmetrics.json",
}

// Load 从指定文件加载配置，未出现的键保留默认值。
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover 在 dir 中查找第一个存在的配置文件，返回其路径。
// 没有找到时返回空字符串。
func Discover(dir string) string {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadOrDefault 加载显式指定的配置文件；未指定时在 dir 中自动查找。
// 返回实际使用的配置文件路径，使用默认值时为空。
func LoadOrDefault(explicit string, dir string) (*Config, string, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = Discover(dir)
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate 检查配置值是否合法。
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	switch strings.ToLower(strings.TrimSpace(c.Output.Format)) {
	case "text", "table", "json", "":
	default:
		return fmt.Errorf("unsupported format %q, allowed values: text, table, json", c.Output.Format)
	}
	return nil
}
