package rss

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate 尽力解析各种格式的时间文本。
// 解析失败（包括空串）返回零值 time.Time，它排在所有
// 有效时间之前，作为"无法解析"的哨兵排序键，不是错误信号。
func ParseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
