package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lumeng/newsriver/internal/logger"
	"github.com/mmcdole/gofeed"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultFetchDelay   = 500 * time.Millisecond
	defaultUserAgent    = "NewsRiver/1.0 RSS Reader"
)

// Fetcher 负责抓取新闻源并把条目归一化为 Article。
type Fetcher struct {
	parser    *gofeed.Parser
	client    *http.Client
	delay     time.Duration
	userAgent string
}

// Options 抓取器可调参数，零值字段取内置默认。
type Options struct {
	Timeout   time.Duration // 单次 HTTP 请求超时
	Delay     time.Duration // 每个源抓取后的礼貌性停顿
	UserAgent string
}

// NewFetcher 创建抓取器。
func NewFetcher(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = defaultFetchDelay
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return &Fetcher{
		parser:    gofeed.NewParser(),
		client:    &http.Client{Timeout: timeout},
		delay:     delay,
		userAgent: ua,
	}
}

// Fetch 抓取单个源，按文档内原始顺序返回归一化条目。
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]Article, error) {
	feed, err := f.parseFeed(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("抓取 %s 失败: %w", src.Name, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, normalize(item, src.Name))
	}
	return articles, nil
}

// FetchAll 按注册表顺序依次抓取全部源，汇总为一个序列。
// 单个源失败只记日志并跳过，不影响其余源；每个源抓取后
// 无论成败都停顿固定时长，避免对远端服务器过于频繁。
// ctx 取消时在源与源之间停止，返回已抓取的部分。
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) []Article {
	runID := uuid.NewString()[:8]

	var all []Article
	for _, src := range sources {
		logger.Infof("[rss] (%s) 正在抓取 %s ...", runID, src.Name)

		articles, err := f.Fetch(ctx, src)
		if err != nil {
			logger.Warnf("[rss] (%s) %v", runID, err)
		} else {
			logger.Infof("[rss] (%s) %s 获取 %d 条", runID, src.Name, len(articles))
			all = append(all, articles...)
		}

		select {
		case <-ctx.Done():
			return all
		case <-time.After(f.delay):
		}
	}
	return all
}

// parseFeed 抓取并解析 Feed 文档。
func (f *Fetcher) parseFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return f.parser.Parse(resp.Body)
}

// normalize 把 gofeed 条目映射为 Article，逐字段按回退链取值。
func normalize(item *gofeed.Item, sourceName string) Article {
	title := item.Title
	if title == "" {
		title = placeholderTitle
	}

	// gofeed 把 RSS 的 description 和 Atom 的 summary 统一放在
	// Description 字段，content:encoded 放在 Content。
	desc := item.Description
	if desc == "" {
		desc = item.Content
	}
	desc = stripHTML(desc)
	if desc == "" {
		desc = placeholderDescription
	}

	published := item.Published
	if published == "" {
		published = item.Updated
	}

	return Article{
		Title:       title,
		Link:        item.Link,
		Description: desc,
		Published:   published,
		Source:      sourceName,
	}
}
