package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// key: i18n 键名（如 "log.catalog.loaded"），args 替换译文中的占位符
// ============================================================================

func logDebug(key string, args ...any) { logWithKey(LogDebug, key, args...) }
func logInfo(key string, args ...any)  { logWithKey(LogInfo, key, args...) }
func logWarn(key string, args ...any)  { logWithKey(LogWarn, key, args...) }
func logError(key string, args ...any) { logWithKey(LogError, key, args...) }

// logWithKey 翻译 key 并写入日志文件
func logWithKey(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}
	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	globalLogger.Log(level, key, text)
}

// getLogText 获取 i18n 日志文本，找不到时返回 key 本身
func getLogText(key string) string {
	if globalModel != nil {
		return globalModel.getText(key)
	}
	return lookupText(English, key)
}

// ============================================================================
// 简化日志函数 - 用于没有 i18n key 的直接消息
// ============================================================================

func logInfoDirect(format string, args ...any) { logDirect(LogInfo, format, args...) }
func logWarnDirect(format string, args ...any) { logDirect(LogWarn, format, args...) }

func logDirect(level LogLevel, format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(level, "", fmt.Sprintf(format, args...))
}
