package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 视口状态跟踪
// ============================================================================

// ViewportTracker 持有列表的滚动位置和测量高度，并据此计算渲染窗口。
// 每个视图实例独占一个 tracker，不与其他实例共享。
type ViewportTracker[T any] struct {
	layout    LayoutConfig
	items     []T
	scrollTop int // 当前滚动偏移
	height    int // 当前测量到的视口高度，0 表示尚未测量

	// 当前的尺寸观察
	observer    SizeObserver
	container   *ScrollContainer
	observation uint64
}

// newViewportTracker 创建视口跟踪器，布局非法时直接返回错误
func newViewportTracker[T any](layout LayoutConfig) (*ViewportTracker[T], error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &ViewportTracker[T]{layout: layout}, nil
}

// Layout 返回布局配置
func (t *ViewportTracker[T]) Layout() LayoutConfig {
	return t.layout
}

// ScrollTop 返回当前滚动偏移
func (t *ViewportTracker[T]) ScrollTop() int {
	return t.scrollTop
}

// Height 返回当前测量高度
func (t *ViewportTracker[T]) Height() int {
	return t.height
}

// SetItems 整体替换列表
func (t *ViewportTracker[T]) SetItems(items []T) {
	t.items = items
}

// Items 返回当前列表
func (t *ViewportTracker[T]) Items() []T {
	return t.items
}

// ============================================================================
// 事件处理
// ============================================================================

// HandleScroll 滚动事件：直接写入新的滚动偏移，不做平滑或防抖
func (t *ViewportTracker[T]) HandleScroll(offset int) {
	t.scrollTop = offset
}

// HandleSizeObserved 尺寸观察结果：写入新的测量高度
func (t *ViewportTracker[T]) HandleSizeObserved(height int) {
	debugPrint("debug.viewport.measured", height)
	t.height = height
}

// MaxScrollTop 滚动偏移的最大值（与原生滚动容器一致）
func (t *ViewportTracker[T]) MaxScrollTop() int {
	return max(0, t.FullHeight()-t.height)
}

// ScrollBy 由宿主产生的相对滚动（鼠标滚轮、翻页键），结果夹在合法范围内
func (t *ViewportTracker[T]) ScrollBy(delta int) {
	t.ScrollTo(t.scrollTop + delta)
}

// ScrollTo 滚动到指定偏移，结果夹在合法范围内
func (t *ViewportTracker[T]) ScrollTo(offset int) {
	offset = min(offset, t.MaxScrollTop())
	t.HandleScroll(max(0, offset))
}

// ============================================================================
// 尺寸观察生命周期
// ============================================================================

// Attach 开始观察容器尺寸。容器变化时先释放旧的观察，避免观察已销毁的容器
func (t *ViewportTracker[T]) Attach(c *ScrollContainer, observer SizeObserver) tea.Cmd {
	if t.observer == observer && t.container == c && t.observer != nil {
		return nil
	}
	t.Detach()
	if c == nil || observer == nil {
		return nil
	}

	id, cmd := observer.Observe(c, t.HandleSizeObserved)
	t.observer = observer
	t.container = c
	t.observation = id
	return cmd
}

// Detach 释放当前观察
func (t *ViewportTracker[T]) Detach() {
	if t.observer != nil {
		t.observer.Unobserve(t.observation)
	}
	t.observer = nil
	t.container = nil
	t.observation = 0
}

// Container 当前观察的容器，未观察时为 nil
func (t *ViewportTracker[T]) Container() *ScrollContainer {
	return t.container
}

// ============================================================================
// 派生结果
// ============================================================================

// Derive 用当前状态重新计算渲染窗口。
// 计算量只与可见行数有关，因此每次状态变化都直接重算，不做缓存
func (t *ViewportTracker[T]) Derive() Window[T] {
	return computeWindow(t.items, t.layout, t.height, t.scrollTop)
}

// FullHeight 滚动内容总高度
func (t *ViewportTracker[T]) FullHeight() int {
	return len(t.items)*t.layout.ItemHeight + t.layout.padding()
}
