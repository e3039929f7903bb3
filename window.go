package main

import (
	"errors"
	"fmt"
)

// ============================================================================
// 虚拟列表布局
// ============================================================================

// errInvalidLayout 布局配置非法（行高必须为正，内边距不能为负）
var errInvalidLayout = errors.New("invalid list layout")

// LayoutConfig 虚拟列表布局配置，一次窗口会话内保持不变
type LayoutConfig struct {
	ItemHeight    int `yaml:"item_height"`    // 每行高度（终端中以行为单位）
	PaddingTop    int `yaml:"padding_top"`    // 列表顶部留白
	PaddingBottom int `yaml:"padding_bottom"` // 列表底部留白
}

// Validate 校验布局配置
func (l LayoutConfig) Validate() error {
	if l.ItemHeight <= 0 {
		return fmt.Errorf("%w: item height %d must be positive", errInvalidLayout, l.ItemHeight)
	}
	if l.PaddingTop < 0 || l.PaddingBottom < 0 {
		return fmt.Errorf("%w: padding %d/%d must not be negative", errInvalidLayout, l.PaddingTop, l.PaddingBottom)
	}
	return nil
}

// padding 上下留白之和
func (l LayoutConfig) padding() int {
	return l.PaddingTop + l.PaddingBottom
}

// ============================================================================
// 窗口计算
// ============================================================================

// 视口上方多渲染一行，保证从上方滚入的行在完全可见之前已经存在并可聚焦
const overscanAbove = 1

// 视口下方多渲染的行数，快速滚动时避免空白闪烁
const overscanBelow = 4

// VisibleItem 渲染切片中的一行
type VisibleItem[T any] struct {
	Top   int // 该行在整个滚动内容中的绝对偏移
	Value T
}

// Window 一次窗口计算的结果
type Window[T any] struct {
	FullHeight int              // 滚动内容总高度（决定滚动条比例）
	StartIndex int              // 切片第一行在完整列表中的下标
	Items      []VisibleItem[T] // 需要渲染的连续切片
}

// computeWindow 根据滚动位置和视口高度计算需要渲染的连续切片。
// 纯函数：相同输入总是得到相同输出。视口高度为 0 表示尚未测量，此时不渲染任何行。
func computeWindow[T any](items []T, layout LayoutConfig, viewportHeight, scrollTop int) Window[T] {
	if layout.ItemHeight <= 0 {
		panic(fmt.Sprintf("computeWindow: item height %d must be positive", layout.ItemHeight))
	}

	w := Window[T]{
		FullHeight: len(items)*layout.ItemHeight + layout.padding(),
	}
	if viewportHeight <= 0 {
		return w
	}

	adjusted := max(0, scrollTop-layout.PaddingTop)
	start := max(0, adjusted/layout.ItemHeight-overscanAbove)
	count := max(0, viewportHeight-layout.padding())/layout.ItemHeight + overscanBelow

	w.StartIndex = start
	if start >= len(items) {
		return w
	}
	end := min(start+count, len(items))

	top := start*layout.ItemHeight + layout.PaddingTop
	w.Items = make([]VisibleItem[T], 0, end-start)
	for i, item := range items[start:end] {
		w.Items = append(w.Items, VisibleItem[T]{
			Top:   top + i*layout.ItemHeight,
			Value: item,
		})
	}
	return w
}

// rowAt 返回覆盖内容绝对偏移 y 的渲染行下标，没有则返回 -1（留白区域或未渲染）
func (w Window[T]) rowAt(y, itemHeight int) int {
	for i, item := range w.Items {
		if y >= item.Top && y < item.Top+itemHeight {
			return i
		}
	}
	return -1
}
