package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// cliOptions 命令行参数
type cliOptions struct {
	configPath   string
	query        string
	favoriteOnly bool
	print        bool
	list         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd 创建根命令
func newRootCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:          "coin-finder",
		Short:        "Search, favorite and pick currency tickers in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", configFile, "path to the YAML config file")
	flags.StringVarP(&opts.query, "query", "q", "", "initial search query")
	flags.BoolVar(&opts.favoriteOnly, "favorites-only", false, "start in favorites-only mode")
	flags.BoolVar(&opts.print, "print", false, "print the selected ticker to stdout and exit")
	flags.BoolVar(&opts.list, "list", false, "print the filtered catalog as a table and exit")
	return cmd
}

// run 加载配置、日志和收藏后进入交互界面或列表模式
func run(ctx context.Context, out io.Writer, opts cliOptions) error {
	if err := loadI18nFiles(i18nDir); err != nil {
		return err
	}

	config := loadConfig(opts.configPath)
	if err := InitLogger(logDir, parseLogLevel(config.System.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer func() {
		if globalLogger != nil {
			globalLogger.Close()
		}
	}()
	logInfo("log.app.start", opts.configPath)

	favorites := loadFavorites(config.Favorites.File, config.Favorites.Defaults)

	if opts.list {
		return runList(ctx, out, config, favorites, opts)
	}
	return runTUI(out, config, favorites, opts)
}

// runTUI 运行交互界面
func runTUI(out io.Writer, config Config, favorites *FavoriteSet, opts cliOptions) error {
	m, err := newModel(config, favorites, &http.Client{})
	if err != nil {
		return err
	}
	if opts.query != "" {
		m.search.SetValue(opts.query)
	}
	if opts.favoriteOnly {
		m.setFavoriteOnly(true)
	}
	m.refreshList()
	m.printSelection = opts.print
	m.onSelect = func(id string) {
		logInfo("log.app.selected", id)
	}
	globalModel = m

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	m.teardown()

	if opts.print && m.selected != "" {
		fmt.Fprintln(out, m.selected)
	}
	return nil
}

// runList 非交互模式：获取目录、过滤并以表格输出
func runList(ctx context.Context, out io.Writer, config Config, favorites *FavoriteSet, opts cliOptions) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Catalog.TimeoutSeconds)*time.Second)
	defer cancel()

	var catalog []string
	if !opts.favoriteOnly {
		coins, err := fetchCoinCatalog(ctx, &http.Client{}, config.Catalog.URL)
		if err != nil {
			// 目录获取失败按空结果处理
			logWarn("log.catalog.failed", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		catalog = coins
	}

	coins := filterCoins(catalog, favorites.List(), opts.query, opts.favoriteOnly)
	renderCoinTable(out, coins, favorites, Language(config.System.Language))
	return nil
}

// ============================================================================
// 模型初始化
// ============================================================================

// newModel 创建主模型
func newModel(config Config, favorites *FavoriteSet, client *http.Client) (*Model, error) {
	tracker, err := newViewportTracker[string](config.Display.LayoutConfig)
	if err != nil {
		return nil, fmt.Errorf("create list viewport: %w", err)
	}

	m := &Model{
		config:     config,
		language:   Language(config.System.Language),
		keys:       defaultKeyMap(),
		debugMode:  config.System.DebugMode,
		focusArea:  FocusSearch,
		tabCursor:  tabAll,
		httpClient: client,
		favorites:  favorites,
		star:       newStarPainter(config.Display.FavoriteColor, "yellow"),
		list:       tracker,
		resize:     newResizeHub(),
		catalog:    []string{},
		listContainer: &ScrollContainer{
			Name:       "list",
			ChromeRows: listChromeRows,
		},
		debugContainer: &ScrollContainer{
			Name:       "list+debug",
			ChromeRows: listChromeRows + debugPanelRows,
		},
	}

	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = m.getText("search.placeholder")
	ti.CharLimit = 32
	ti.Focus()
	m.search = ti

	// 窗口尺寸未知时不会产生测量，首次 WindowSizeMsg 到达后才开始渲染行
	m.list.Attach(m.activeContainer(), m.resize)
	m.refreshList()
	return m, nil
}

// Init 启动光标闪烁和目录加载
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCatalogCmd())
}

// teardown 视图关闭：取消未完成的加载并释放尺寸观察
func (m *Model) teardown() {
	m.closed = true
	m.cancelCatalogLoad()
	m.list.Detach()
}

// ============================================================================
// 消息处理
// ============================================================================

// Update 处理消息
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, msg.Width-lipgloss.Width(m.search.Prompt)-1)
		return m, m.resize.WindowResized(msg.Height)

	case sizeObservedMsg:
		if m.resize.Deliver(msg) {
			m.clampScroll()
			m.recompute()
		}
		return m, nil

	case catalogLoadedMsg:
		return m, m.handleCatalogLoaded(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// 其余消息（光标闪烁等）交给搜索框
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKey 键盘事件
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleDebug):
		return m, m.toggleDebugMode()
	case key.Matches(msg, m.keys.NextArea):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevArea):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollList(-m.list.Height())
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.scrollList(m.list.Height())
		return m, nil
	}

	switch m.focusArea {
	case FocusTabs:
		return m.handleTabsKey(msg)
	case FocusList:
		return m.handleListKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

// handleSearchKey 搜索框中的按键
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Down) {
		// 向下键进入列表第一个已渲染行
		if m.focus.Focus(0, m.renderedKeys()) {
			return m, m.setFocusArea(FocusList)
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refreshList()
	}
	return m, cmd
}

// handleTabsKey 收藏 / 全部 切换按钮上的按键
func (m *Model) handleTabsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.tabCursor = tabFavorite
	case key.Matches(msg, m.keys.Right):
		m.tabCursor = tabAll
	case key.Matches(msg, m.keys.Activate):
		m.setFavoriteOnly(m.tabCursor == tabFavorite)
	}
	return m, nil
}

// handleListKey 列表行上的按键
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.renderedKeys()
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.focus.Advance(FocusNext, keys) {
			debugPrint("debug.focus.moved", m.focus.Key(), m.focus.Index())
		}
	case key.Matches(msg, m.keys.Up):
		if m.focus.Advance(FocusPrevious, keys) {
			debugPrint("debug.focus.moved", m.focus.Key(), m.focus.Index())
		}
	case key.Matches(msg, m.keys.ToggleFavorite):
		if len(keys) > 0 {
			m.focus.ToggleMarker(m.focus.Key(), m.favorites)
		}
	case key.Matches(msg, m.keys.Select):
		if len(keys) > 0 {
			return m, m.selectCoin(m.focus.Key())
		}
	case key.Matches(msg, m.keys.Home):
		m.scrollList(-m.list.ScrollTop())
	case key.Matches(msg, m.keys.End):
		m.scrollList(m.list.MaxScrollTop() - m.list.ScrollTop())
	}
	return m, nil
}

// handleMouse 鼠标事件：滚轮滚动列表，左键点击行或切换按钮
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button { //nolint:exhaustive // 只处理滚轮和左键
	case tea.MouseButtonWheelUp:
		m.scrollList(-m.config.Display.ScrollStep)
	case tea.MouseButtonWheelDown:
		m.scrollList(m.config.Display.ScrollStep)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			return m, m.handleClick(msg.X, msg.Y)
		}
	}
	return m, nil
}

// handleClick 左键点击
func (m *Model) handleClick(x, y int) tea.Cmd {
	if y == listOriginRow-1 {
		if x < lipgloss.Width(m.renderTab(tabFavorite)) {
			m.tabCursor = tabFavorite
		} else {
			m.tabCursor = tabAll
		}
		m.setFavoriteOnly(m.tabCursor == tabFavorite)
		return m.setFocusArea(FocusTabs)
	}

	row := y - listOriginRow
	if row < 0 || row >= m.list.Height() {
		return nil
	}
	index := m.window.rowAt(m.list.ScrollTop()+row, m.list.Layout().ItemHeight)
	keys := m.renderedKeys()
	if !m.focus.Focus(index, keys) {
		return nil
	}
	focusCmd := m.setFocusArea(FocusList)

	// 点击星标列切换收藏，点击名称选择
	if x < starColumns {
		m.focus.ToggleMarker(keys[index], m.favorites)
		return focusCmd
	}
	return tea.Batch(focusCmd, m.selectCoin(keys[index]))
}

// ============================================================================
// 状态变更
// ============================================================================

// setFocusArea 切换焦点区域
func (m *Model) setFocusArea(area FocusArea) tea.Cmd {
	m.focusArea = area
	if area == FocusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// cycleFocus 按 Tab 顺序移动焦点区域，列表没有已渲染行时跳过列表
func (m *Model) cycleFocus(delta int) tea.Cmd {
	const areas = 3
	next := m.focusArea
	for range areas {
		next = FocusArea((int(next) + delta + areas) % areas)
		if next != FocusList || len(m.window.Items) > 0 {
			break
		}
	}
	return m.setFocusArea(next)
}

// setFavoriteOnly 切换 只看收藏 / 全部
func (m *Model) setFavoriteOnly(favoriteOnly bool) {
	m.favoriteOnly = favoriteOnly
	if favoriteOnly {
		m.tabCursor = tabFavorite
	} else {
		m.tabCursor = tabAll
	}
	m.refreshList()
}

// selectCoin 选择币种（触发外部回调），--print 模式下选择后退出
func (m *Model) selectCoin(id string) tea.Cmd {
	m.selected = id
	m.message = fmt.Sprintf(m.getText("message.selected"), id)
	if m.onSelect != nil {
		m.onSelect(id)
	}
	if m.printSelection {
		m.teardown()
		return tea.Quit
	}
	return nil
}

// scrollList 宿主产生的滚动（滚轮、翻页键）
func (m *Model) scrollList(delta int) {
	m.list.ScrollBy(delta)
	m.recompute()
}

// refreshList 用最新的过滤结果替换列表
func (m *Model) refreshList() {
	m.list.SetItems(m.getFilteredCoins())
	m.clampScroll()
	m.recompute()
}

// clampScroll 内容变短或视口变高后，像原生滚动容器一样把滚动位置收回合法范围
func (m *Model) clampScroll() {
	if m.list.ScrollTop() > m.list.MaxScrollTop() {
		m.list.HandleScroll(m.list.MaxScrollTop())
	}
}

// recompute 重新计算渲染窗口并重新锚定焦点
func (m *Model) recompute() {
	m.window = m.list.Derive()
	m.focus.Sync(m.renderedKeys())
}

// renderedKeys 当前渲染切片中各行的标识
func (m *Model) renderedKeys() []string {
	keys := make([]string, len(m.window.Items))
	for i, item := range m.window.Items {
		keys[i] = item.Value
	}
	return keys
}

// query 当前搜索词
func (m *Model) query() string {
	return m.search.Value()
}
