package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 滚动容器
// ============================================================================

// ScrollContainer 列表所在的滚动容器。
// 终端里容器高度 = 窗口高度 - 非列表区域（搜索框、标签栏、提示行、调试面板）占用的行数
type ScrollContainer struct {
	Name       string
	ChromeRows int
}

// heightFor 根据窗口高度计算容器可用高度
func (c *ScrollContainer) heightFor(windowHeight int) int {
	return max(0, windowHeight-c.ChromeRows)
}

// ============================================================================
// 尺寸观察
// ============================================================================

// SizeObserver 容器尺寸观察者。
// 测量结果通过 sizeObservedMsg 异步送达，调用方不能假设与触发原因同步。
type SizeObserver interface {
	Observe(c *ScrollContainer, onResize func(height int)) (uint64, tea.Cmd)
	Unobserve(id uint64)
}

// sizeObservedMsg 一次容器测量结果
type sizeObservedMsg struct {
	observation uint64
	height      int
}

// observation 一个有效的观察登记
type observation struct {
	container *ScrollContainer
	onResize  func(height int)
}

// resizeHub 把 tea.WindowSizeMsg 转换为各容器的尺寸观察结果
type resizeHub struct {
	nextID       uint64
	active       map[uint64]*observation
	windowHeight int
	measured     bool // 是否已收到过窗口尺寸
}

// newResizeHub 创建尺寸观察中心
func newResizeHub() *resizeHub {
	return &resizeHub{
		active: make(map[uint64]*observation),
	}
}

// Observe 开始观察容器。窗口尺寸已知时立即安排一次初始测量
func (h *resizeHub) Observe(c *ScrollContainer, onResize func(height int)) (uint64, tea.Cmd) {
	h.nextID++
	id := h.nextID
	h.active[id] = &observation{container: c, onResize: onResize}
	debugPrint("debug.resize.observe", c.Name, id)

	if !h.measured {
		return id, nil
	}
	return id, measureCmd(id, c.heightFor(h.windowHeight))
}

// Unobserve 释放观察；之后到达的该观察的测量结果会被丢弃
func (h *resizeHub) Unobserve(id uint64) {
	if obs, ok := h.active[id]; ok {
		debugPrint("debug.resize.release", obs.container.Name, id)
		delete(h.active, id)
	}
}

// WindowResized 记录新的窗口高度，并为每个有效观察安排一次测量
func (h *resizeHub) WindowResized(windowHeight int) tea.Cmd {
	h.windowHeight = windowHeight
	h.measured = true

	cmds := make([]tea.Cmd, 0, len(h.active))
	for id, obs := range h.active {
		cmds = append(cmds, measureCmd(id, obs.container.heightFor(windowHeight)))
	}
	return tea.Batch(cmds...)
}

// Deliver 把测量结果交给对应的观察者，返回是否被处理
func (h *resizeHub) Deliver(msg sizeObservedMsg) bool {
	obs, ok := h.active[msg.observation]
	if !ok {
		debugPrint("debug.resize.stale", msg.observation)
		return false
	}
	obs.onResize(msg.height)
	return true
}

// activeCount 当前有效观察数量
func (h *resizeHub) activeCount() int {
	return len(h.active)
}

// measureCmd 生成一次异步测量
func measureCmd(id uint64, height int) tea.Cmd {
	return func() tea.Msg {
		return sizeObservedMsg{observation: id, height: height}
	}
}
