// Package display 负责把新闻条目按固定文本版式输出。
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lumeng/newsriver/internal/rss"
)

const (
	defaultSummaryLen = 150
	bannerWidth       = 80
)

// Printer 按固定版式输出条目，只写 w，不改动任何数据。
type Printer struct {
	w          io.Writer
	summaryLen int
}

// NewPrinter 创建输出器。summaryLen <= 0 时取默认截断宽度。
func NewPrinter(w io.Writer, summaryLen int) *Printer {
	if summaryLen <= 0 {
		summaryLen = defaultSummaryLen
	}
	return &Printer{w: w, summaryLen: summaryLen}
}

// Print 输出最多 limit 条。描述统一截断到固定字符数并追加
// 省略号，不足截断宽度的描述也追加，版式保持一致。
func (p *Printer) Print(articles []rss.Article, limit int) {
	shown := limit
	if len(articles) < shown {
		shown = len(articles)
	}

	p.Banner()
	fmt.Fprintf(p.w, "Displaying %d of %d total articles\n", shown, len(articles))
	p.Banner()
	fmt.Fprintln(p.w)

	for i, a := range articles[:shown] {
		fmt.Fprintf(p.w, "%d. [%s] %s\n", i+1, a.Source, a.Title)
		fmt.Fprintf(p.w, "   %s\n", a.Link)
		fmt.Fprintf(p.w, "   Published: %s\n", a.Published)
		fmt.Fprintf(p.w, "   %s...\n", snippet(a.Description, p.summaryLen))
		fmt.Fprintln(p.w)
	}
}

// Banner 输出分隔条。
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, strings.Repeat("=", bannerWidth))
}

// Headline 输出带分隔条的标题行，用于过滤结果等段落开头。
func (p *Printer) Headline(format string, args ...interface{}) {
	fmt.Fprintln(p.w)
	p.Banner()
	fmt.Fprintf(p.w, format+"\n", args...)
	p.Banner()
}

// snippet 取描述前 maxLen 个字符（按 UTF-8 字符计算）。
func snippet(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return string(runes)
}
