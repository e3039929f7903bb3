package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 调试日志系统
// ============================================================================

// globalModel 全局模型引用，用于调试日志记录
var globalModel *Model

// 调试日志最多保留的条数
const maxDebugLogs = 200

// debugPrint 调试输出函数 - 支持 i18n key
func debugPrint(key string, args ...any) {
	if globalModel != nil && globalModel.debugMode {
		timestamp := time.Now().Format("15:04:05")
		format := getDebugText(key)
		globalModel.addDebugLog(fmt.Sprintf("[%s] %s", timestamp, fmt.Sprintf(format, args...)))
	}
}

// addDebugLog 添加调试日志，超出上限时丢弃最早的
func (m *Model) addDebugLog(msg string) {
	m.debugLogs = append(m.debugLogs, msg)
	if len(m.debugLogs) > maxDebugLogs {
		m.debugLogs = m.debugLogs[len(m.debugLogs)-maxDebugLogs:]
	}
}

// ============================================================================
// 调试面板
// ============================================================================

// activeContainer 当前列表所在的容器。调试面板打开时列表区域变小，对应另一个容器
func (m *Model) activeContainer() *ScrollContainer {
	if m.debugMode {
		return m.debugContainer
	}
	return m.listContainer
}

// toggleDebugMode 切换调试面板，并把视口观察重新挂到新的容器上
func (m *Model) toggleDebugMode() tea.Cmd {
	m.debugMode = !m.debugMode
	debugPrint("debug.panel.opened")
	return m.list.Attach(m.activeContainer(), m.resize)
}

// renderDebugPanel 渲染调试面板，固定占用 debugPanelRows 行
func (m *Model) renderDebugPanel() string {
	width := max(m.width, 20)
	lines := make([]string, 0, debugPanelRows)
	lines = append(lines, strings.Repeat("=", width))

	start := max(0, len(m.debugLogs)-maxDebugLines)
	visible := m.debugLogs[start:]
	header := fmt.Sprintf(m.getText("debug.panel.title"), len(m.debugLogs))
	lines = append(lines, truncateLabel(header, width))
	for _, log := range visible {
		lines = append(lines, truncateLabel(log, width))
	}
	for len(lines) < debugPanelRows-1 {
		lines = append(lines, "")
	}
	lines = append(lines, strings.Repeat("=", width))

	return strings.Join(lines[:debugPanelRows], "\n")
}
