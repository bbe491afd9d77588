// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/history"
	"github.com/hazadus/go-playlist/internal/song"
)

// Типы треков в конфигурации
const (
	KindLocal  = "local"
	KindOnline = "online"
)

// DefaultPlaylistName - название плейлиста по умолчанию
const DefaultPlaylistName = "Мой плейлист"

// ErrUnknownSongKind возвращается для трека с неизвестным типом
var ErrUnknownSongKind = errors.New("неизвестный тип трека")

// SongConfig описывает трек, которым плейлист заполняется при запуске
type SongConfig struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Artist string `yaml:"artist"`
	Length int    `yaml:"length"`         // Длина трека в секундах
	Path   string `yaml:"path,omitempty"` // Путь к файлу для локального трека
	URL    string `yaml:"url,omitempty"`  // URL для онлайн-трека
}

// Config структура для хранения конфигурации приложения
type Config struct {
	PlaylistName string       `yaml:"playlist_name"`
	HistorySize  int          `yaml:"history_size"`
	ShuffleSeed  uint64       `yaml:"shuffle_seed"` // 0 - случайное перемешивание
	LogLevel     string       `yaml:"log_level"`
	Songs        []SongConfig `yaml:"songs"`
}

// Default возвращает конфигурацию по умолчанию с тремя демонстрационными треками
func Default() *Config {
	return &Config{
		PlaylistName: DefaultPlaylistName,
		HistorySize:  history.DefaultCapacity,
		Songs: []SongConfig{
			{Kind: KindLocal, Name: "Bohemian Rhapsody", Artist: "Queen", Length: 354, Path: "/music/queen_br.mp3"},
			{Kind: KindOnline, Name: "Shape of You", Artist: "Ed Sheeran", Length: 234, URL: "https://spotify.com/shape-of-you"},
			{Kind: KindLocal, Name: "Imagine", Artist: "John Lennon", Length: 183, Path: "/music/imagine.mp3"},
		},
	}
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}

// LoadConfig загружает конфигурацию приложения из указанного файла
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора yaml: %w", err)
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.PlaylistName == "" {
		config.PlaylistName = DefaultPlaylistName
	}
	if config.HistorySize <= 0 {
		config.HistorySize = history.DefaultCapacity
	}

	for i := range config.Songs {
		config.Songs[i].Kind = strings.ToLower(strings.TrimSpace(config.Songs[i].Kind))
		if _, err := config.Songs[i].Song(); err != nil {
			return nil, fmt.Errorf("трек #%d: %w", i+1, err)
		}
	}

	return config, nil
}

// Song создает трек по описанию из конфигурации
func (c SongConfig) Song() (song.Song, error) {
	switch c.Kind {
	case KindLocal:
		return song.NewLocalSong(c.Name, c.Artist, c.Length, c.Path), nil
	case KindOnline:
		return song.NewOnlineSong(c.Name, c.Artist, c.Length, c.URL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSongKind, c.Kind)
	}
}
