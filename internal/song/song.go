// Package song описывает треки плейлиста: общий интерфейс Song и два его
// варианта - локальный файл и онлайн-трансляцию
package song

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hazadus/go-playlist/internal/utils"
)

// Source определяет источник воспроизведения трека
type Source int

const (
	// SourceLocal - трек хранится в локальном файле
	SourceLocal Source = iota
	// SourceOnline - трек транслируется по URL
	SourceOnline
)

// String возвращает короткое имя источника
func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceOnline:
		return "online"
	default:
		return "unknown"
	}
}

// Icon возвращает значок источника для вывода в списках
func (s Source) Icon() string {
	if s == SourceOnline {
		return "🌐"
	}
	return "🎵"
}

// Song представляет неизменяемый трек
type Song interface {
	// ID уникален для каждого созданного трека, даже если поля совпадают
	ID() uuid.UUID
	Name() string
	Artist() string
	// Length возвращает длину трека в секундах
	Length() int
	Source() Source
	// Location возвращает путь к файлу или URL, в зависимости от источника
	Location() string
	FormatLength() string
	// Play возвращает описание воспроизведения, ничего не изменяя
	Play() string
	String() string
}

// info хранит общие для всех вариантов поля трека
type info struct {
	id     uuid.UUID
	name   string
	artist string
	length int
}

func newInfo(name, artist string, length int) info {
	return info{
		id:     uuid.New(),
		name:   name,
		artist: artist,
		length: length,
	}
}

func (i info) ID() uuid.UUID { return i.id }
func (i info) Name() string { return i.name }
func (i info) Artist() string { return i.artist }
func (i info) Length() int { return i.length }

// FormatLength форматирует длину трека как M:SS
func (i info) FormatLength() string {
	return utils.FormatClock(i.length)
}

// String возвращает описание трека в формате "Название - Исполнитель [M:SS]"
func (i info) String() string {
	return fmt.Sprintf("%s - %s [%s]", i.name, i.artist, i.FormatLength())
}

// LocalSong - трек из локального файла
type LocalSong struct {
	info
	filePath string
}

// NewLocalSong создает локальный трек. Значения не проверяются
func NewLocalSong(name, artist string, length int, filePath string) *LocalSong {
	return &LocalSong{
		info:     newInfo(name, artist, length),
		filePath: filePath,
	}
}

// FilePath возвращает путь к файлу трека
func (s *LocalSong) FilePath() string { return s.filePath }

// Location возвращает путь к файлу трека
func (s *LocalSong) Location() string { return s.filePath }

// Source всегда возвращает SourceLocal
func (s *LocalSong) Source() Source { return SourceLocal }

// Play возвращает описание воспроизведения локального файла
func (s *LocalSong) Play() string {
	return fmt.Sprintf("🎵 Воспроизводим локальный файл: %s\n   %s", s.filePath, s)
}

// OnlineSong - трек, транслируемый по сети
type OnlineSong struct {
	info
	url string
}

// NewOnlineSong создает онлайн-трек. Значения не проверяются
func NewOnlineSong(name, artist string, length int, url string) *OnlineSong {
	return &OnlineSong{
		info: newInfo(name, artist, length),
		url:  url,
	}
}

// URL возвращает адрес трансляции
func (s *OnlineSong) URL() string { return s.url }

// Location возвращает адрес трансляции
func (s *OnlineSong) Location() string { return s.url }

// Source всегда возвращает SourceOnline
func (s *OnlineSong) Source() Source { return SourceOnline }

// Play возвращает описание потокового воспроизведения
func (s *OnlineSong) Play() string {
	return fmt.Sprintf("🌐 Потоковое воспроизведение: %s\n   %s", s.url, s)
}
