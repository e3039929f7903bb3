package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// 星标列宽度（星标 + 空格），点击该区域切换收藏
const starColumns = 2

// ============================================================================
// 样式
// ============================================================================

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	tabStyle        = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Underline(true).Foreground(lipgloss.Color("11"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	focusedRowStyle = lipgloss.NewStyle().Reverse(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	scrollbarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ============================================================================
// 主视图
// ============================================================================

// View 渲染界面：标题、搜索框、切换按钮、列表、提示行、状态行（以及调试面板）
func (m *Model) View() string {
	lines := []string{
		titleStyle.Render(m.getText("app.title")),
		m.search.View(),
		m.renderTabs(),
	}
	lines = append(lines, m.renderList()...)
	lines = append(lines, m.renderHint(), m.message)
	if m.debugMode {
		lines = append(lines, m.renderDebugPanel())
	}
	return strings.Join(lines, "\n")
}

// renderTab 渲染单个切换按钮
func (m *Model) renderTab(tab int) string {
	label := m.getText("tab.all")
	active := !m.favoriteOnly
	if tab == tabFavorite {
		label = "★ " + m.getText("tab.favorite")
		active = m.favoriteOnly
	}

	style := tabStyle
	if active {
		style = activeTabStyle
	}
	if m.focusArea == FocusTabs && m.tabCursor == tab {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

// renderTabs 渲染切换按钮和结果数量
func (m *Model) renderTabs() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTab(tabFavorite),
		" ",
		m.renderTab(tabAll),
		"  ",
		hintStyle.Render(m.formatCount(len(m.list.Items()))),
	)
}

// ============================================================================
// 列表视图
// ============================================================================

// renderList 渲染列表区域，正好占用测量到的视口高度。
// 只遍历渲染切片中的行；视口中不属于任何行的部分（留白）输出空行
func (m *Model) renderList() []string {
	height := m.list.Height()
	if height <= 0 {
		return nil
	}

	width := m.width
	var scrollbar []string
	if m.config.Display.ShowScrollbar {
		width -= scrollbarWidth
		scrollbar = renderScrollbar(height, m.window.FullHeight, m.list.ScrollTop())
	}

	itemHeight := m.list.Layout().ItemHeight
	lines := make([]string, height)
	for y := range height {
		offset := m.list.ScrollTop() + y
		line := strings.Repeat(" ", max(0, width))
		if i := m.window.rowAt(offset, itemHeight); i >= 0 && m.window.Items[i].Top == offset {
			line = m.renderRow(i, width)
		}
		lines[y] = line
	}

	if len(m.window.Items) == 0 {
		lines[min(m.list.Layout().PaddingTop, height-1)] = padLabel(m.emptyListText(), width)
	}

	if scrollbar != nil {
		for y := range lines {
			lines[y] += scrollbarStyle.Render(scrollbar[y])
		}
	}
	return lines
}

// renderRow 渲染渲染切片中的第 i 行
func (m *Model) renderRow(i, width int) string {
	coin := m.window.Items[i].Value

	star := "☆"
	if m.favorites.Has(coin) {
		star = m.star.Paint("★")
	}

	// 可聚焦行（Tab 停靠行）用箭头标出
	marker := " "
	if i == m.focus.Index() {
		marker = "›"
	}
	label := padLabel(marker+coin, width-starColumns)

	switch {
	case m.focusArea == FocusList && i == m.focus.Index():
		label = focusedRowStyle.Render(label)
	case coin == m.selected:
		label = selectedStyle.Render(label)
	}
	return star + " " + label
}

// emptyListText 列表为空时的提示
func (m *Model) emptyListText() string {
	switch {
	case m.catalogLoading && !m.favoriteOnly:
		return m.getText("list.loading")
	default:
		return m.getText("list.empty")
	}
}

// renderHint 提示行
func (m *Model) renderHint() string {
	if m.catalogFailed {
		return errorHintStyle.Render(m.getText("hint.catalogFailed"))
	}
	return hintStyle.Render(m.getText("hint.favorite"))
}
