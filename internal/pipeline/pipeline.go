// Package pipeline 串联一次完整的批处理流程：
// 抓取 → 排序 → 全量输出 → 逐轮关键词过滤输出。
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lumeng/newsriver/internal/config"
	"github.com/lumeng/newsriver/internal/display"
	"github.com/lumeng/newsriver/internal/rss"
)

// Pipeline 单线程顺序执行，每次进程调用跑一遍。
type Pipeline struct {
	cfg     *config.Config
	fetcher *rss.Fetcher
	printer *display.Printer
	out     io.Writer
}

// New 按配置装配流水线，输出写入 out。
func New(cfg *config.Config, out io.Writer) *Pipeline {
	fetcher := rss.NewFetcher(rss.Options{
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		Delay:     time.Duration(cfg.Fetch.DelayMs) * time.Millisecond,
		UserAgent: cfg.Fetch.UserAgent,
	})

	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		printer: display.NewPrinter(out, cfg.Display.SummaryLen),
		out:     out,
	}
}

// Run 执行一次完整流程。除源间的固定停顿外没有其他暂停点，
// ctx 取消时在阶段边界停止。
func (p *Pipeline) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, "RSS News Aggregator")
	p.printer.Banner()
	fmt.Fprintln(p.out)

	articles := p.fetcher.FetchAll(ctx, p.cfg.Feeds)
	if err := ctx.Err(); err != nil {
		return err
	}

	// 默认最新在前
	sorted := rss.SortByDate(articles, true)
	p.printer.Print(sorted, p.cfg.Display.Limit)

	for _, f := range p.cfg.Filters {
		matched := rss.FilterKeyword(sorted, f.Keyword)
		p.printer.Headline("Filtered for '%s': %d articles found", f.Keyword, len(matched))
		p.printer.Print(matched, f.Limit)
	}
	return nil
}
