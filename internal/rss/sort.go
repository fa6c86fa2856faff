package rss

import (
	"sort"
	"time"
)

// SortByDate 按发布时间排序，返回新切片，不改动输入。
// newestFirst 为 true 时最新的排在最前。稳定排序：时间相同
// 或都无法解析的条目保持输入中的相对顺序。
func SortByDate(articles []Article, newestFirst bool) []Article {
	type dated struct {
		article Article
		at      time.Time
	}

	// 每条只解析一次，避免比较函数里反复解析
	items := make([]dated, len(articles))
	for i, a := range articles {
		items[i] = dated{article: a, at: ParseDate(a.Published)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if newestFirst {
			return items[i].at.After(items[j].at)
		}
		return items[i].at.Before(items[j].at)
	})

	sorted := make([]Article, len(items))
	for i, it := range items {
		sorted[i] = it.article
	}
	return sorted
}
