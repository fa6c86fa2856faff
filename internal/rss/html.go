package rss

import (
	"strings"

	"golang.org/x/net/html"
)

// stripHTML 剥离描述文本里的 HTML 标签与实体，只留纯文本，
// 连续空白压缩为单个空格。
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			if name, _ := tok.TagName(); isInvisible(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tok.TagName(); isInvisible(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tok.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// isInvisible 标签内容不应出现在摘要里。
func isInvisible(tag string) bool {
	return tag == "script" || tag == "style"
}
