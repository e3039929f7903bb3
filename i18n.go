package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// texts i18n 配置 - 存储各语言的文本映射
var texts map[Language]TextMap

// loadI18nFiles 加载 i18n 文件，一个语言都没有加载成功时返回错误
func loadI18nFiles(dir string) error {
	texts = make(map[Language]TextMap)

	for _, lang := range []Language{Chinese, English} {
		path := filepath.Join(dir, string(lang)+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to read %s: %v\n", path, err)
			continue
		}
		var langTexts TextMap
		if err := json.Unmarshal(data, &langTexts); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to parse %s: %v\n", path, err)
			continue
		}
		texts[lang] = langTexts
	}

	if len(texts) == 0 {
		return errors.New("no i18n files could be loaded, please ensure i18n/zh.json and i18n/en.json exist")
	}
	return nil
}

// lookupText 查找指定语言的文本，找不到时回退英文，最后返回 key 本身
func lookupText(lang Language, key string) string {
	if text, exists := texts[lang][key]; exists {
		return text
	}
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key
}

// getText 获取本地化文本的辅助函数
func (m *Model) getText(key string) string {
	return lookupText(m.language, key)
}

// getDebugText 全局调试文本获取函数（供 debugPrint 使用）
func getDebugText(key string) string {
	if globalModel == nil {
		return lookupText(English, key)
	}
	return globalModel.getText(key)
}
