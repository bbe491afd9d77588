// Package history хранит ограниченный журнал недавно воспроизведенных треков
package history

import (
	"time"

	"github.com/hazadus/go-playlist/internal/song"
)

// DefaultCapacity - размер журнала по умолчанию
const DefaultCapacity = 10

// Entry - запись о воспроизведении трека
type Entry struct {
	Song     song.Song
	PlayedAt time.Time
}

// Log - кольцевой буфер фиксированного размера. При переполнении
// вытесняется самая старая запись
type Log struct {
	entries []Entry
	start   int // индекс самой старой записи
	size    int
}

// New создает журнал указанной емкости. Емкость меньше 1 заменяется на DefaultCapacity
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries: make([]Entry, capacity),
	}
}

// Add добавляет запись, вытесняя самую старую при переполнении
func (l *Log) Add(entry Entry) {
	if l.size < len(l.entries) {
		l.entries[(l.start+l.size)%len(l.entries)] = entry
		l.size++
		return
	}
	l.entries[l.start] = entry
	l.start = (l.start + 1) % len(l.entries)
}

// Len возвращает количество записей в журнале
func (l *Log) Len() int {
	return l.size
}

// Cap возвращает емкость журнала
func (l *Log) Cap() int {
	return len(l.entries)
}

// Entries возвращает записи от самой старой к самой новой
func (l *Log) Entries() []Entry {
	result := make([]Entry, l.size)
	for i := 0; i < l.size; i++ {
		result[i] = l.entries[(l.start+i)%len(l.entries)]
	}
	return result
}

// Recent возвращает записи от самой новой к самой старой
func (l *Log) Recent() []Entry {
	result := make([]Entry, l.size)
	for i := 0; i < l.size; i++ {
		result[i] = l.entries[(l.start+l.size-1-i)%len(l.entries)]
	}
	return result
}
