package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// 搜索过滤
// ============================================================================

// normalizeQuery 规范化搜索词：去掉首尾空白并转为大写
func normalizeQuery(query string) string {
	// Caser 有内部状态，不能跨 goroutine 共享，每次新建
	return cases.Upper(language.Und).String(strings.TrimSpace(query))
}

// filterCoins 按子串过滤代码列表，保持原有顺序。
// favoriteOnly 为 true 时在收藏列表（按收藏顺序）中过滤，否则在完整目录中过滤
func filterCoins(all []string, favorites []string, query string, favoriteOnly bool) []string {
	normalized := normalizeQuery(query)
	source := all
	if favoriteOnly {
		source = favorites
	}

	result := make([]string, 0, len(source))
	for _, coin := range source {
		if strings.Contains(coin, normalized) {
			result = append(result, coin)
		}
	}
	return result
}

// ============================================================================
// 过滤结果缓存
// ============================================================================

// getFilteredCoins 获取过滤后的列表（带缓存）。
// 只在目录、搜索词或模式变化时重新计算；切换收藏不会让当前列表中的行立刻消失
func (m *Model) getFilteredCoins() []string {
	if m.isFilteredValid &&
		m.cachedQuery == m.query() &&
		m.cachedFavoriteOnly == m.favoriteOnly {
		return m.cachedFiltered
	}

	m.cachedFiltered = filterCoins(m.catalog, m.favorites.List(), m.query(), m.favoriteOnly)
	m.cachedQuery = m.query()
	m.cachedFavoriteOnly = m.favoriteOnly
	m.isFilteredValid = true
	debugPrint("debug.filter.recompute", m.cachedQuery, m.favoriteOnly, len(m.cachedFiltered))
	return m.cachedFiltered
}

// invalidateFilteredCoins 目录变化后使缓存失效
func (m *Model) invalidateFilteredCoins() {
	m.isFilteredValid = false
}
