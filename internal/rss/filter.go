package rss

import "strings"

// FilterKeyword 返回标题或描述包含关键词的条目子序列，
// 匹配不区分大小写，保持输入顺序。空关键词是任意文本的
// 子串，因此匹配全部条目。
func FilterKeyword(articles []Article, keyword string) []Article {
	lower := strings.ToLower(keyword)

	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), lower) ||
			strings.Contains(strings.ToLower(a.Description), lower) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
