package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yml")
	config := loadConfig(path)

	if !reflect.DeepEqual(config, getDefaultConfig()) {
		t.Errorf("loadConfig on a missing file = %+v, expected defaults", config)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}

	// 写出的默认配置可以重新读回
	if reloaded := loadConfig(path); !reflect.DeepEqual(reloaded, config) {
		t.Errorf("reloaded config = %+v, expected %+v", reloaded, config)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("system: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if config := loadConfig(path); !reflect.DeepEqual(config, getDefaultConfig()) {
		t.Errorf("loadConfig on invalid YAML = %+v, expected defaults", config)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `system:
  language: zh
display:
  item_height: 2
  padding_top: 0
  padding_bottom: 3
favorites:
  defaults: [SOL]
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	config := loadConfig(path)
	expectedLayout := LayoutConfig{ItemHeight: 2, PaddingTop: 0, PaddingBottom: 3}
	if config.Display.LayoutConfig != expectedLayout {
		t.Errorf("layout = %+v, expected %+v", config.Display.LayoutConfig, expectedLayout)
	}
	if config.System.Language != "zh" {
		t.Errorf("language = %q, expected zh", config.System.Language)
	}
	if !reflect.DeepEqual(config.Favorites.Defaults, []string{"SOL"}) {
		t.Errorf("favorite defaults = %v, expected [SOL]", config.Favorites.Defaults)
	}
	if config.Catalog.URL != getDefaultConfig().Catalog.URL {
		t.Errorf("catalog url = %q, expected the default", config.Catalog.URL)
	}
}

func TestValidateConfig(t *testing.T) {
	defaults := getDefaultConfig()

	tests := []struct {
		modify func(*Config)
		check  func(Config) bool
		desc   string
	}{
		{
			func(c *Config) { c.System.Language = "fr" },
			func(c Config) bool { return c.System.Language == defaults.System.Language },
			"不支持的语言",
		},
		{
			func(c *Config) { c.Catalog.TimeoutSeconds = 0 },
			func(c Config) bool { return c.Catalog.TimeoutSeconds == defaults.Catalog.TimeoutSeconds },
			"超时为 0",
		},
		{
			func(c *Config) { c.Catalog.TimeoutSeconds = 500 },
			func(c Config) bool { return c.Catalog.TimeoutSeconds == defaults.Catalog.TimeoutSeconds },
			"超时过长",
		},
		{
			func(c *Config) { c.Display.ItemHeight = 0 },
			func(c Config) bool { return c.Display.LayoutConfig == defaults.Display.LayoutConfig },
			"行高为 0 恢复默认布局",
		},
		{
			func(c *Config) { c.Display.PaddingTop = -2 },
			func(c Config) bool { return c.Display.LayoutConfig == defaults.Display.LayoutConfig },
			"负留白恢复默认布局",
		},
		{
			func(c *Config) { c.Display.ScrollStep = -1 },
			func(c Config) bool { return c.Display.ScrollStep == defaults.Display.ScrollStep },
			"非法滚动步长",
		},
		{
			func(c *Config) { c.Favorites.File = "" },
			func(c Config) bool { return c.Favorites.File == defaults.Favorites.File },
			"收藏文件为空",
		},
		{
			func(c *Config) { c.Favorites.Defaults = []string{} },
			func(c Config) bool { return len(c.Favorites.Defaults) == 0 },
			"显式清空默认收藏",
		},
	}

	for _, tt := range tests {
		config := getDefaultConfig()
		tt.modify(&config)
		if got := validateConfig(config); !tt.check(got) {
			t.Errorf("%s: validateConfig produced %+v", tt.desc, got)
		}
	}
}
