package main

// ============================================================================
// 列表行漫游焦点
// ============================================================================

// FocusDirection 焦点移动方向
type FocusDirection int

const (
	FocusNext     FocusDirection = iota // 下一行
	FocusPrevious                       // 上一行
)

// MarkerToggler 行标记（收藏）的外部持有者
type MarkerToggler interface {
	Toggle(id string) bool
}

// RovingFocus 在当前渲染切片中维护唯一一个可聚焦行。
// 下标指向渲染切片而不是完整列表；只认识已渲染的行，切片之外的行无法通过方向键到达。
type RovingFocus struct {
	index int    // 可聚焦行在渲染切片中的下标
	key   string // 可聚焦行的标识，用于重算后重新定位
}

// Index 当前可聚焦行的下标
func (f *RovingFocus) Index() int {
	return f.index
}

// Key 当前可聚焦行的标识
func (f *RovingFocus) Key() string {
	return f.key
}

// Reset 重新挂载时回到第 0 行
func (f *RovingFocus) Reset() {
	f.index = 0
	f.key = ""
}

// Sync 渲染切片重算后调用。
// 可聚焦行仍在切片中时跟随它的新位置；已被移出（例如滚出视口）时重新锚定到第 0 行
func (f *RovingFocus) Sync(keys []string) {
	if len(keys) == 0 {
		f.Reset()
		return
	}
	for i, k := range keys {
		if k == f.key {
			f.index = i
			return
		}
	}
	if f.key != "" {
		debugPrint("debug.focus.reanchor", f.key, keys[0])
	}
	f.index = 0
	f.key = keys[0]
}

// Advance 把焦点移到相邻的已渲染行。
// 返回 true 表示焦点已移动，宿主需要把输入焦点交给新行；到达切片边缘时不做任何事
func (f *RovingFocus) Advance(dir FocusDirection, keys []string) bool {
	target := f.index + 1
	if dir == FocusPrevious {
		target = f.index - 1
	}
	return f.Focus(target, keys)
}

// Focus 直接聚焦指定渲染行（鼠标点击、从搜索框进入列表）
func (f *RovingFocus) Focus(index int, keys []string) bool {
	if index < 0 || index >= len(keys) {
		return false
	}
	f.index = index
	f.key = keys[index]
	return true
}

// ToggleMarker 切换行标记，只产生副作用，不改变焦点
func (f *RovingFocus) ToggleMarker(key string, markers MarkerToggler) bool {
	return markers.Toggle(key)
}
