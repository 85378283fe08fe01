package run

import (
	"strings"
	"time"
)

// list 模式的 CSV 约定：
// - 每个字段整体都用双引号包裹，内嵌引号翻倍
// - people 字段先对每个名字做条件转义（含 , " 换行才加引号），
//   再用分号拼接，最后整体按字段规则包裹
// 标准库 encoding/csv 无法产出这种“外层恒定引号 + 内层条件转义”的形态，
// 因此这两个小函数手写。

// Field 把 s 渲染为一个始终带引号的 CSV 字段。
func Field(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteString(`""`)
		} else {
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// PeopleField 把名字列表渲染为 list 模式的 People 字段。
func PeopleField(names []string) string {
	escaped := make([]string, 0, len(names))
	for _, n := range names {
		escaped = append(escaped, escapeIfNeeded(n))
	}
	return Field(strings.Join(escaped, ";"))
}

// escapeIfNeeded 只在名字含逗号、引号或换行时加引号（内嵌引号翻倍）。
func escapeIfNeeded(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return Field(s)
}

// FormatTime 按 "YYYY-MM-DD HH:MM:SS"（UTC）渲染时间。
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
