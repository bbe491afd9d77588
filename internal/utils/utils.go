// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import "fmt"

// FormatClock форматирует продолжительность в секундах в формат M:SS
// (минуты без ведущего нуля, секунды всегда двумя цифрами)
func FormatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatTotal форматирует общую продолжительность в формат "Hh Mm Ss",
// а если она меньше часа - в формат "Mm Ss"
func FormatTotal(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

// FormatDurationFromSeconds форматирует продолжительность в секундах в формат HH:MM:SS
func FormatDurationFromSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// TruncateString обрезает строку до указанной длины, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
