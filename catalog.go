package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 币种目录获取
// ============================================================================

// 目录响应体大小上限
const maxCatalogBytes = 8 << 20

// catalogLoadedMsg 目录获取结果
type catalogLoadedMsg struct {
	generation int
	coins      []string
	err        error
}

// fetchCoinCatalog 获取币种代码目录（JSON 字符串数组），可通过 ctx 取消
func fetchCoinCatalog(ctx context.Context, client *http.Client, url string) ([]string, error) {
	logDebug("log.catalog.request", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	var coins []string
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBytes)).Decode(&coins); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// 去掉空代码和重复代码，渲染时以代码本身作为行标识
	seen := make(map[string]struct{}, len(coins))
	unique := make([]string, 0, len(coins))
	for _, coin := range coins {
		if coin == "" {
			continue
		}
		if _, dup := seen[coin]; dup {
			continue
		}
		seen[coin] = struct{}{}
		unique = append(unique, coin)
	}

	logInfo("log.catalog.loaded", len(unique))
	return unique, nil
}

// ============================================================================
// 异步加载（可取消）
// ============================================================================

// loadCatalogCmd 启动一次目录加载。
// 每次加载有独立的代号，视图关闭或重新加载后，旧请求的结果会被丢弃
func (m *Model) loadCatalogCmd() tea.Cmd {
	m.cancelCatalogLoad()

	ctx, cancel := context.WithCancel(context.Background())
	m.catalogCancel = cancel
	m.catalogGeneration++
	m.catalogLoading = true

	generation := m.catalogGeneration
	client := m.httpClient
	url := m.config.Catalog.URL
	timeout := time.Duration(m.config.Catalog.TimeoutSeconds) * time.Second

	return func() tea.Msg {
		ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
		defer cancelTimeout()

		coins, err := fetchCoinCatalog(ctx, client, url)
		return catalogLoadedMsg{generation: generation, coins: coins, err: err}
	}
}

// cancelCatalogLoad 取消进行中的目录加载
func (m *Model) cancelCatalogLoad() {
	if m.catalogCancel != nil {
		m.catalogCancel()
		m.catalogCancel = nil
	}
}

// handleCatalogLoaded 处理目录加载结果。失败时按空目录处理，不中断界面
func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) tea.Cmd {
	if m.closed || msg.generation != m.catalogGeneration {
		debugPrint("debug.catalog.discard", msg.generation)
		return nil
	}
	m.catalogLoading = false
	m.catalogCancel = nil

	if msg.err != nil {
		logWarn("log.catalog.failed", msg.err)
		debugPrint("debug.catalog.failed", msg.err)
		m.catalog = []string{}
		m.catalogFailed = true
	} else {
		m.catalog = msg.coins
		m.catalogFailed = false
	}

	m.invalidateFilteredCoins()
	m.refreshList()
	return nil
}
