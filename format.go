package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// ============================================================================
// 文本格式化
// ============================================================================

// truncateLabel 按显示宽度截断文本（宽字符按两列计算）
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// padLabel 截断并右侧补空格到固定显示宽度
func padLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(truncateLabel(s, width), width)
}

// formatCount 格式化结果数量（千位分隔）
func (m *Model) formatCount(n int) string {
	return fmt.Sprintf(m.getText("list.count"), humanize.Comma(int64(n)))
}

// ============================================================================
// 滚动条
// ============================================================================

// renderScrollbar 渲染一列滚动条，滑块长度和位置按内容总高度等比例计算
func renderScrollbar(viewHeight, contentHeight, scrollTop int) []string {
	if viewHeight <= 0 {
		return nil
	}

	const (
		track = "│"
		thumb = "┃"
	)

	column := make([]string, viewHeight)
	if contentHeight <= viewHeight {
		for i := range column {
			column[i] = track
		}
		return column
	}

	thumbSize := max(1, viewHeight*viewHeight/contentHeight)
	thumbMaxTop := viewHeight - thumbSize
	maxScrollTop := contentHeight - viewHeight

	thumbTop := 0
	if maxScrollTop > 0 {
		thumbTop = min(max(0, scrollTop*thumbMaxTop/maxScrollTop), thumbMaxTop)
	}

	for i := range column {
		if i >= thumbTop && i < thumbTop+thumbSize {
			column[i] = thumb
		} else {
			column[i] = track
		}
	}
	return column
}
