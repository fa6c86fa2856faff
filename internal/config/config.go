package config

import (
	"fmt"
	"os"

	"github.com/lumeng/newsriver/internal/rss"
	"gopkg.in/yaml.v3"
)

// Config 是 NewsRiver 的顶层配置结构。
type Config struct {
	Feeds   []rss.Source   `yaml:"feeds"`
	Fetch   FetchConfig    `yaml:"fetch"`
	Display DisplayConfig  `yaml:"display"`
	Filters []FilterConfig `yaml:"filters"`
	Log     LogConfig      `yaml:"log"`
}

// FetchConfig 抓取配置。
type FetchConfig struct {
	// DelayMs 每个源抓取后的停顿毫秒数，对远端服务器的礼貌性节流。
	DelayMs int `yaml:"delay_ms"`
	// TimeoutSeconds 单次 HTTP 请求超时秒数。
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// DisplayConfig 输出配置。
type DisplayConfig struct {
	// Limit 全量列表最多输出的条目数。
	Limit int `yaml:"limit"`
	// SummaryLen 描述截断宽度（按字符计）。
	SummaryLen int `yaml:"summary_len"`
}

// FilterConfig 一轮关键词过滤及其输出条数上限。
type FilterConfig struct {
	Keyword string `yaml:"keyword"`
	Limit   int    `yaml:"limit"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Default 返回全默认配置。不提供配置文件时程序就用它运行。
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load 读取 YAML 配置文件并返回 Config。
// 支持 ${VAR_NAME} 形式的环境变量展开。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	setDefaults(cfg)
	return cfg, nil
}

// setDefaults 为未设置的配置项填充默认值。
func setDefaults(cfg *Config) {
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = rss.DefaultSources()
	}
	if cfg.Fetch.DelayMs == 0 {
		cfg.Fetch.DelayMs = 500
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 10
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "NewsRiver/1.0 RSS Reader"
	}
	if cfg.Display.Limit == 0 {
		cfg.Display.Limit = 15
	}
	if cfg.Display.SummaryLen == 0 {
		cfg.Display.SummaryLen = 150
	}
	if cfg.Filters == nil {
		cfg.Filters = []FilterConfig{
			{Keyword: "technology", Limit: 10},
			{Keyword: "artificial intelligence", Limit: 5},
		}
	}
	for i := range cfg.Filters {
		if cfg.Filters[i].Limit == 0 {
			cfg.Filters[i].Limit = 10
		}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
