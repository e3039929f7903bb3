package main

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestModel 创建不落盘的测试模型，列表每行高度 1，上下留白各 1
func newTestModel(t *testing.T, favorites []string) *Model {
	t.Helper()
	_ = loadI18nFiles(i18nDir)

	config := getDefaultConfig()
	m, err := newModel(config, newFavoriteSet(favorites), http.DefaultClient)
	if err != nil {
		t.Fatalf("newModel error: %v", err)
	}
	return m
}

// resizeWindow 发送窗口尺寸并送达随后的测量结果
func resizeWindow(m *Model, width, height int) {
	_, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	for _, msg := range collectSizes(cmd) {
		m.Update(msg)
	}
}

// loadTestCatalog 模拟一次成功的目录加载
func loadTestCatalog(m *Model, coins []string) {
	m.catalogGeneration++
	m.Update(catalogLoadedMsg{generation: m.catalogGeneration, coins: coins})
}

func pressKey(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// TestModelFirstMeasurement 首次测量前不渲染任何行
func TestModelFirstMeasurement(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(100))

	if len(m.window.Items) != 0 {
		t.Fatalf("rows rendered before measurement: %d", len(m.window.Items))
	}

	resizeWindow(m, 80, 20)

	// 窗口 20 行，非列表区域 5 行
	if m.list.Height() != 15 {
		t.Errorf("list height = %d, expected 15", m.list.Height())
	}
	// (15-2)/1 + 4 = 17 行
	if len(m.window.Items) != 17 {
		t.Errorf("rendered rows = %d, expected 17", len(m.window.Items))
	}
	if m.focus.Index() != 0 || m.focus.Key() != "C000" {
		t.Errorf("focus = %d/%s, expected 0/C000", m.focus.Index(), m.focus.Key())
	}
}

// TestModelKeyboardNavigation 方向键只在已渲染行之间移动，滚动后焦点重新锚定
func TestModelKeyboardNavigation(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(100))
	resizeWindow(m, 80, 20)

	pressKey(m, tea.KeyDown)
	if m.focusArea != FocusList {
		t.Fatalf("focus area = %v after down from search, expected list", m.focusArea)
	}

	for range 16 {
		pressKey(m, tea.KeyDown)
	}
	if m.focus.Index() != 16 || m.focus.Key() != "C016" {
		t.Fatalf("focus = %d/%s, expected 16/C016", m.focus.Index(), m.focus.Key())
	}

	// 最后一个已渲染行继续向下不移动，也不滚动
	pressKey(m, tea.KeyDown)
	if m.focus.Index() != 16 || m.list.ScrollTop() != 0 {
		t.Errorf("down on last rendered row: focus %d scrollTop %d, expected 16 and 0", m.focus.Index(), m.list.ScrollTop())
	}

	// 翻页后 C016 仍在切片中，焦点跟随
	pressKey(m, tea.KeyPgDown)
	if m.list.ScrollTop() != 15 {
		t.Fatalf("scrollTop after page down = %d, expected 15", m.list.ScrollTop())
	}
	if m.window.StartIndex != 13 {
		t.Errorf("StartIndex = %d, expected 13", m.window.StartIndex)
	}
	if m.focus.Key() != "C016" || m.focus.Index() != 3 {
		t.Errorf("focus = %d/%s, expected 3/C016", m.focus.Index(), m.focus.Key())
	}

	// 再翻一页 C016 滚出，焦点回到第 0 行
	pressKey(m, tea.KeyPgDown)
	if m.focus.Index() != 0 || m.focus.Key() != "C028" {
		t.Errorf("focus = %d/%s after scrolling out, expected 0/C028", m.focus.Index(), m.focus.Key())
	}

	pressKey(m, tea.KeyHome)
	if m.list.ScrollTop() != 0 || m.focus.Key() != "C000" {
		t.Errorf("home: scrollTop %d focus %s, expected 0/C000", m.list.ScrollTop(), m.focus.Key())
	}

	pressKey(m, tea.KeyEnd)
	if m.list.ScrollTop() != m.list.MaxScrollTop() {
		t.Errorf("end: scrollTop %d, expected %d", m.list.ScrollTop(), m.list.MaxScrollTop())
	}
	keys := m.renderedKeys()
	if keys[len(keys)-1] != "C099" {
		t.Errorf("last rendered row at bottom = %s, expected C099", keys[len(keys)-1])
	}
}

// TestModelToggleFavorite F 键切换收藏，焦点不变
func TestModelToggleFavorite(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(10))
	resizeWindow(m, 80, 20)

	pressKey(m, tea.KeyDown)
	pressKey(m, tea.KeyDown)
	typeRunes(m, "f")

	if !m.favorites.Has("C001") {
		t.Errorf("C001 not favorited")
	}
	if m.focus.Index() != 1 || m.focusArea != FocusList {
		t.Errorf("focus moved to %d area %v", m.focus.Index(), m.focusArea)
	}

	typeRunes(m, "F")
	if m.favorites.Has("C001") {
		t.Errorf("C001 still favorited after second toggle")
	}
}

// TestModelSelect 回车选择并触发回调
func TestModelSelect(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, []string{"BTC", "ETH", "SOL"})
	resizeWindow(m, 80, 20)

	var picked []string
	m.onSelect = func(id string) { picked = append(picked, id) }

	pressKey(m, tea.KeyDown)
	pressKey(m, tea.KeyDown)
	if cmd := pressKey(m, tea.KeyEnter); cmd != nil {
		t.Errorf("select without --print returned a command")
	}

	if m.selected != "ETH" || !reflect.DeepEqual(picked, []string{"ETH"}) {
		t.Errorf("selected = %s picked = %v, expected ETH", m.selected, picked)
	}
}

// TestModelSelectAndPrint 打印模式下选择后退出
func TestModelSelectAndPrint(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, []string{"BTC"})
	resizeWindow(m, 80, 20)
	m.printSelection = true

	pressKey(m, tea.KeyDown)
	cmd := pressKey(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("select in print mode returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("select in print mode did not quit")
	}
	if !m.closed {
		t.Errorf("model not closed after select in print mode")
	}
}

// TestModelSearch 输入搜索词后列表整体替换，滚动位置收回合法范围
func TestModelSearch(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(100))
	resizeWindow(m, 80, 20)

	m.list.HandleScroll(60)
	typeRunes(m, "c00")

	if got := len(m.list.Items()); got != 10 {
		t.Errorf("filtered items = %d, expected 10", got)
	}
	if m.list.ScrollTop() != 0 {
		t.Errorf("scrollTop = %d after the list shrank, expected 0", m.list.ScrollTop())
	}
	if m.focus.Key() != "C000" {
		t.Errorf("focus key = %s, expected C000", m.focus.Key())
	}

	// 没有结果时从搜索框按向下不进入列表
	typeRunes(m, "x")
	pressKey(m, tea.KeyDown)
	if m.focusArea != FocusSearch {
		t.Errorf("focus area = %v with an empty list, expected search", m.focusArea)
	}
}

// TestModelTabCycle Tab 在搜索框、切换按钮和列表之间移动，列表为空时跳过
func TestModelTabCycle(t *testing.T) {
	m := newTestModel(t, []string{"BTC"})
	resizeWindow(m, 80, 20)

	pressKey(m, tea.KeyTab)
	if m.focusArea != FocusTabs {
		t.Fatalf("focus area = %v, expected tabs", m.focusArea)
	}
	pressKey(m, tea.KeyTab)
	if m.focusArea != FocusSearch {
		t.Errorf("focus area = %v with an empty list, expected search", m.focusArea)
	}

	pressKey(m, tea.KeyShiftTab)
	if m.focusArea != FocusTabs {
		t.Fatalf("focus area = %v after shift+tab, expected tabs", m.focusArea)
	}
	pressKey(m, tea.KeyLeft)
	pressKey(m, tea.KeyEnter)
	if !m.favoriteOnly {
		t.Fatalf("favorites-only mode not activated")
	}
	if got := m.renderedKeys(); !reflect.DeepEqual(got, []string{"BTC"}) {
		t.Errorf("rows = %v, expected [BTC]", got)
	}

	pressKey(m, tea.KeyTab)
	if m.focusArea != FocusList {
		t.Errorf("focus area = %v, expected list", m.focusArea)
	}
}

// TestModelMouse 滚轮滚动，点击名称选择，点击星标切换收藏
func TestModelMouse(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(100))
	resizeWindow(m, 80, 20)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.list.ScrollTop() != 3 {
		t.Errorf("scrollTop after wheel = %d, expected 3", m.list.ScrollTop())
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.list.ScrollTop() != 0 {
		t.Errorf("scrollTop after wheel up = %d, expected 0", m.list.ScrollTop())
	}

	// 列表第 0 行是顶部留白
	m.Update(tea.MouseMsg{X: 5, Y: listOriginRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.selected != "" {
		t.Errorf("click on padding selected %s", m.selected)
	}

	m.Update(tea.MouseMsg{X: 5, Y: listOriginRow + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.selected != "C000" || m.focusArea != FocusList {
		t.Errorf("click on first row: selected %q area %v", m.selected, m.focusArea)
	}

	m.Update(tea.MouseMsg{X: 0, Y: listOriginRow + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.favorites.Has("C002") {
		t.Errorf("click on star did not favorite C002")
	}
	if m.selected != "C000" || m.focus.Key() != "C002" {
		t.Errorf("click on star: selected %s focus %s, expected C000/C002", m.selected, m.focus.Key())
	}

	m.Update(tea.MouseMsg{X: 0, Y: listOriginRow - 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.favoriteOnly {
		t.Errorf("click on favorite tab did not switch mode")
	}
}

// TestModelDebugToggle 调试面板切换时释放旧容器的观察
func TestModelDebugToggle(t *testing.T) {
	m := newTestModel(t, nil)
	loadTestCatalog(m, makeCoins(100))
	resizeWindow(m, 80, 30)

	if m.list.Height() != 25 {
		t.Fatalf("list height = %d, expected 25", m.list.Height())
	}

	cmd := pressKey(m, tea.KeyCtrlG)
	for _, msg := range collectSizes(cmd) {
		m.Update(msg)
	}
	if !m.debugMode || m.list.Container() != m.debugContainer {
		t.Fatalf("debug panel not attached")
	}
	if m.list.Height() != 15 {
		t.Errorf("list height with debug panel = %d, expected 15", m.list.Height())
	}
	if m.resize.activeCount() != 1 {
		t.Errorf("active observations = %d, expected 1", m.resize.activeCount())
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view with debug panel has %d lines, expected 30", len(lines))
	}

	cmd = pressKey(m, tea.KeyCtrlG)
	for _, msg := range collectSizes(cmd) {
		m.Update(msg)
	}
	if m.list.Height() != 25 {
		t.Errorf("list height after closing debug panel = %d, expected 25", m.list.Height())
	}
}

// TestModelQuit 退出时取消加载并释放观察
func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	resizeWindow(m, 80, 20)
	m.loadCatalogCmd()

	cmd := pressKey(m, tea.KeyEsc)
	if cmd == nil {
		t.Fatalf("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc did not quit")
	}
	if !m.closed || m.catalogCancel != nil || m.resize.activeCount() != 0 {
		t.Errorf("teardown incomplete: closed=%v cancel=%v active=%d", m.closed, m.catalogCancel != nil, m.resize.activeCount())
	}

	loadTestCatalog(m, []string{"BTC"})
	if len(m.catalog) != 0 {
		t.Errorf("catalog updated after close")
	}
}

// TestModelView 视图正好占满窗口高度
func TestModelView(t *testing.T) {
	m := newTestModel(t, []string{"C001"})
	loadTestCatalog(m, makeCoins(50))
	resizeWindow(m, 60, 20)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, expected 20", len(lines))
	}
	for _, want := range []string{"C000", "★", "☆"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// 只渲染切片中的行
	if strings.Contains(view, "C030") {
		t.Errorf("view renders rows outside the window")
	}
}
