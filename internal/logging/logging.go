// Package logging предоставляет простой уровневый логгер приложения.
//
// Уровень задается переменной окружения LOG_LEVEL (debug, info, warn, error)
// или DEBUG=1, а также может быть переопределен через SetLevel, например
// из файла конфигурации. По умолчанию выводятся только предупреждения и
// ошибки, чтобы не мешать текстовому меню.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel определяет важность сообщения
type LogLevel int

const (
	// LevelDebug - отладочные сообщения
	LevelDebug LogLevel = iota
	// LevelInfo - информационные сообщения
	LevelInfo
	// LevelWarn - предупреждения
	LevelWarn
	// LevelError - ошибки
	LevelError
)

var (
	mu           sync.Mutex
	currentLevel = LevelWarn
	levelOnce    sync.Once
	logger       = log.New(os.Stderr, "playlist: ", log.LstdFlags)
)

// initLevel читает уровень из переменных окружения
func initLevel() {
	levelOnce.Do(func() {
		if debug := os.Getenv("DEBUG"); debug != "" {
			switch strings.ToLower(debug) {
			case "1", "true", "yes", "on":
				currentLevel = LevelDebug
				return
			}
		}
		if level, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
			currentLevel = level
		}
	})
}

// ParseLevel разбирает название уровня. Второе значение false, если название неизвестно
func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelWarn, false
	}
}

// GetLevel возвращает текущий уровень логирования
func GetLevel() LogLevel {
	initLevel()
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// SetLevel устанавливает уровень логирования
func SetLevel(level LogLevel) {
	initLevel()
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// SetOutput перенаправляет вывод логгера
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(level LogLevel, prefix, format string, args ...interface{}) {
	if GetLevel() <= level {
		logger.Printf(prefix+format, args...)
	}
}

// Debug пишет отладочное сообщение
func Debug(format string, args ...interface{}) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info пишет информационное сообщение
func Info(format string, args ...interface{}) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn пишет предупреждение
func Warn(format string, args ...interface{}) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Error пишет сообщение об ошибке
func Error(format string, args ...interface{}) {
	logf(LevelError, "[ERROR] ", format, args...)
}

// String возвращает название уровня
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
