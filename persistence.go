package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Favorites 收藏数据持久化
// ============================================================================

// loadFavorites 从文件加载收藏。文件不存在或损坏时使用默认收藏
func loadFavorites(path string, defaults []string) *FavoriteSet {
	set := loadFavoritesFile(path, defaults)
	set.file = path
	return set
}

func loadFavoritesFile(path string, defaults []string) *FavoriteSet {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("log.favorites.readFail", path, err)
		}
		return newFavoriteSet(defaults)
	}

	var favorites Favorites
	if err := json.Unmarshal(data, &favorites); err != nil {
		logWarn("log.favorites.parseFail", path, err)
		return newFavoriteSet(defaults)
	}
	return newFavoriteSet(favorites.Coins)
}

// saveFavorites 保存收藏到文件
func saveFavorites(path string, set *FavoriteSet) error {
	data, err := json.MarshalIndent(Favorites{Coins: set.List()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create favorites directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",   // 默认英文
			DebugMode: false,  // 调试模式关闭
			LogLevel:  "info", // 默认 INFO 级别
		},
		Catalog: CatalogConfig{
			URL:            "https://api-eu.okotoki.com/coins",
			TimeoutSeconds: 10,
		},
		Display: DisplayConfig{
			LayoutConfig: LayoutConfig{
				ItemHeight:    1, // 每个币种一行
				PaddingTop:    1,
				PaddingBottom: 1,
			},
			ScrollStep:    3,
			FavoriteColor: "yellow",
			ShowScrollbar: true,
		},
		Favorites: FavoritesConfig{
			File:     "data/favorites.json",
			Defaults: []string{"BTC", "ETH", "USDT"},
		},
	}
}

// loadConfig 加载配置文件
func loadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// 如果配置文件不存在，创建默认配置文件
		config := getDefaultConfig()
		if err := saveConfig(path, config); err != nil {
			logWarnDirect("Failed to write default config %s: %v", path, err)
		}
		return config
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		// 如果配置文件格式错误，使用默认配置
		logWarnDirect("Failed to parse config %s: %v", path, err)
		return getDefaultConfig()
	}

	return validateConfig(config)
}

// validateConfig 验证配置的合理性，非法项恢复默认值
func validateConfig(config Config) Config {
	defaults := getDefaultConfig()

	if config.System.Language != string(Chinese) && config.System.Language != string(English) {
		config.System.Language = defaults.System.Language
	}
	if config.System.LogLevel == "" {
		config.System.LogLevel = defaults.System.LogLevel
	}

	if config.Catalog.URL == "" {
		config.Catalog.URL = defaults.Catalog.URL
	}
	if config.Catalog.TimeoutSeconds <= 0 || config.Catalog.TimeoutSeconds > 120 {
		config.Catalog.TimeoutSeconds = defaults.Catalog.TimeoutSeconds
	}

	// 布局非法会导致除零，整体恢复默认布局
	if err := config.Display.LayoutConfig.Validate(); err != nil {
		logWarnDirect("Invalid display layout, using defaults: %v", err)
		config.Display.LayoutConfig = defaults.Display.LayoutConfig
	}
	if config.Display.ScrollStep <= 0 {
		config.Display.ScrollStep = defaults.Display.ScrollStep
	}
	if !isStarColor(config.Display.FavoriteColor) {
		config.Display.FavoriteColor = defaults.Display.FavoriteColor
	}

	if config.Favorites.File == "" {
		config.Favorites.File = defaults.Favorites.File
	}
	if config.Favorites.Defaults == nil {
		config.Favorites.Defaults = defaults.Favorites.Defaults
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
