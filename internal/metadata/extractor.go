// Package metadata предоставляет функционал для извлечения названия и
// исполнителя из тегов аудио файлов
package metadata

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// UnknownArtist подставляется, если исполнителя определить не удалось
const UnknownArtist = "Unknown Artist"

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
	Album  string
	// FromTags равен true, если данные прочитаны из тегов файла, а не из его имени
	FromTags bool
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker. Пустые поля тегов
// дополняются данными из имени источника
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	result := TrackMetadata{
		Artist:   strings.TrimSpace(metadata.Artist()),
		Title:    strings.TrimSpace(metadata.Title()),
		Album:    strings.TrimSpace(metadata.Album()),
		FromTags: true,
	}

	if result.Artist == "" || result.Title == "" {
		fallback := e.getDefaultMetadata(source)
		if result.Artist == "" {
			result.Artist = fallback.Artist
		}
		if result.Title == "" {
			result.Title = fallback.Title
		}
	}

	return result
}

// ExtractFromFile извлекает метаданные из файла. Если файл не открывается,
// метаданные берутся из его имени
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return TrackMetadata{
		Artist: UnknownArtist,
		Title:  nameWithoutExt,
	}
}
