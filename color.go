package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// 配置中可用的星标颜色，"bright-" 前缀表示高亮色
var starColorNames = map[string]text.Color{
	"red":     text.FgRed,
	"green":   text.FgGreen,
	"yellow":  text.FgYellow,
	"blue":    text.FgBlue,
	"magenta": text.FgMagenta,
	"cyan":    text.FgCyan,
	"white":   text.FgWhite,

	"bright-red":     text.FgHiRed,
	"bright-green":   text.FgHiGreen,
	"bright-yellow":  text.FgHiYellow,
	"bright-blue":    text.FgHiBlue,
	"bright-magenta": text.FgHiMagenta,
	"bright-cyan":    text.FgHiCyan,
	"bright-white":   text.FgHiWhite,
}

// isStarColor 颜色名称是否可用
func isStarColor(name string) bool {
	_, ok := starColorNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// starPainter 给收藏星标着色，创建视图时解析一次
type starPainter struct {
	colors text.Colors
}

// newStarPainter 解析颜色名称，无法识别时使用 fallback，两者都无效则不着色
func newStarPainter(name, fallback string) starPainter {
	for _, candidate := range []string{name, fallback} {
		if color, ok := starColorNames[strings.ToLower(strings.TrimSpace(candidate))]; ok {
			return starPainter{colors: text.Colors{color, text.Bold}}
		}
	}
	return starPainter{}
}

// Paint 着色
func (p starPainter) Paint(s string) string {
	if len(p.colors) == 0 {
		return s
	}
	return p.colors.Sprint(s)
}
