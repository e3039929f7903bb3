package main

import (
	"context"
	"net/http"

	"github.com/charmbracelet/bubbles/textinput"
)

// Config 系统配置结构
type Config struct {
	System    SystemConfig    `yaml:"system"`    // 系统设置
	Catalog   CatalogConfig   `yaml:"catalog"`   // 币种目录设置
	Display   DisplayConfig   `yaml:"display"`   // 显示设置
	Favorites FavoritesConfig `yaml:"favorites"` // 收藏设置
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 默认语言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 调试模式开关
	LogLevel  string `yaml:"log_level"`  // 日志级别 "debug", "info", "warn", "error"
}

// CatalogConfig 币种目录设置
type CatalogConfig struct {
	URL            string `yaml:"url"`             // 目录接口地址
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 请求超时（秒）
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	LayoutConfig  `yaml:",inline"`
	ScrollStep    int    `yaml:"scroll_step"`    // 鼠标滚轮每次滚动的行数
	FavoriteColor string `yaml:"favorite_color"` // 收藏星标颜色
	ShowScrollbar bool   `yaml:"show_scrollbar"` // 是否显示滚动条
}

// FavoritesConfig 收藏设置
type FavoritesConfig struct {
	File     string   `yaml:"file"`     // 收藏持久化文件
	Defaults []string `yaml:"defaults"` // 首次运行时的默认收藏
}

// Favorites 收藏文件结构
type Favorites struct {
	Coins []string `json:"coins"`
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// Model 应用程序主模型
type Model struct {
	config    Config
	language  Language
	keys      keyMap
	debugMode bool
	debugLogs []string // 调试日志存储

	// 终端尺寸
	width  int
	height int

	// 焦点与输入
	focusArea    FocusArea
	search       textinput.Model
	tabCursor    int  // 切换按钮光标
	favoriteOnly bool // 是否只看收藏

	// 币种目录
	catalog           []string
	catalogLoading    bool
	catalogFailed     bool
	catalogGeneration int                // 每次加载递增，用于丢弃过期结果
	catalogCancel     context.CancelFunc // 取消进行中的加载
	httpClient        *http.Client

	favorites *FavoriteSet
	star      starPainter // 收藏星标颜色

	// 虚拟列表
	list           *ViewportTracker[string]
	window         Window[string] // 最近一次计算的渲染窗口
	focus          RovingFocus
	resize         *resizeHub
	listContainer  *ScrollContainer
	debugContainer *ScrollContainer

	// 过滤结果缓存
	cachedFiltered     []string
	cachedQuery        string
	cachedFavoriteOnly bool
	isFilteredValid    bool

	// 选择
	onSelect       func(id string)
	selected       string
	printSelection bool // 选择后退出并打印
	message        string

	closed bool // 视图已关闭，之后到达的异步结果全部丢弃
}
