package main

// 文件路径常量
const (
	configFile = "cmd/conf/config.yml"
	i18nDir    = "i18n"
	logDir     = "logs"
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 焦点区域：对应浏览器中的 Tab 顺序
type FocusArea int

const (
	FocusSearch FocusArea = iota // 搜索框
	FocusTabs                    // 收藏 / 全部 切换按钮
	FocusList                    // 列表中的可聚焦行
)

// 模式切换按钮
const (
	tabFavorite = iota // 只看收藏
	tabAll             // 全部币种
)

// 屏幕布局常量（行数）
const (
	listOriginRow  = 3  // 列表区域上方：标题、搜索框、切换按钮
	listChromeRows = 5  // 列表区域以外的总行数：上方三行 + 提示行 + 状态行
	debugPanelRows = 10 // 调试面板占用行数（含上下分隔线）
	maxDebugLines  = 7  // 调试面板显示的日志条数
	scrollbarWidth = 1
)
