// Package rss 提供多源 RSS/Atom 新闻的抓取、归一化、排序与关键词过滤。
package rss

// 缺省占位文本。归一化保证 Article 五个字段永远有值，
// 缺失的字段填占位符或空串，而不是留空指针。
const (
	placeholderTitle       = "No title"
	placeholderDescription = "No description"
)

// Source 新闻源注册表条目，进程生命周期内只读。
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Article 归一化后的新闻条目。创建后不可变。
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	// Published 保留源文档中的原始时间文本，格式因源而异，
	// 排序时才按需解析（见 ParseDate）。
	Published string `json:"published"`
	Source    string `json:"source"`
}

// DefaultSources 编译期内置的新闻源注册表。
// 未提供配置文件时直接使用这份列表。
func DefaultSources() []Source {
	return []Source{
		{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		{Name: "NPR", URL: "https://feeds.npr.org/1001/rss.xml"},
	}
}
