package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"", LevelWarn, false},
		{"verbose", LevelWarn, false},
	}

	for _, test := range tests {
		level, ok := ParseLevel(test.input)
		if level != test.expected || ok != test.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; expected %v, %v", test.input, level, ok, test.expected, test.ok)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	original := GetLevel()
	defer SetLevel(original)

	SetLevel(LevelWarn)
	Debug("отладка %d", 1)
	Info("информация %d", 2)
	Warn("предупреждение %d", 3)
	Error("ошибка %d", 4)

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("Сообщения ниже уровня warn не должны выводиться: %s", output)
	}
	if !strings.Contains(output, "[WARN] предупреждение 3") {
		t.Errorf("Ожидалось предупреждение в выводе: %s", output)
	}
	if !strings.Contains(output, "[ERROR] ошибка 4") {
		t.Errorf("Ожидалась ошибка в выводе: %s", output)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("отладка %d", 5)
	if !strings.Contains(buf.String(), "[DEBUG] отладка 5") {
		t.Errorf("Ожидалось отладочное сообщение: %s", buf.String())
	}
}

func TestLogLevelString(t *testing.T) {
	tests := map[LogLevel]string{
		LevelDebug:  "debug",
		LevelInfo:   "info",
		LevelWarn:   "warn",
		LevelError:  "error",
		LogLevel(9): "unknown(9)",
	}

	for level, expected := range tests {
		if level.String() != expected {
			t.Errorf("LogLevel(%d).String() = %s; expected %s", level, level.String(), expected)
		}
	}
}
