package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/song"
)

func writeConfig(t *testing.T, content []byte) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}
	return configPath
}

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем тестовую конфигурацию
	testConfig := Config{
		PlaylistName: "Дорожный",
		HistorySize:  5,
		ShuffleSeed:  42,
		LogLevel:     "debug",
		Songs: []SongConfig{
			{Kind: KindLocal, Name: "A", Artist: "X", Length: 90, Path: "/a"},
			{Kind: KindOnline, Name: "B", Artist: "Y", Length: 70, URL: "http://b"},
		},
	}

	// Сериализуем конфигурацию в YAML
	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(writeConfig(t, data))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.PlaylistName != testConfig.PlaylistName {
		t.Errorf("Ожидался PlaylistName: %s, получено: %s", testConfig.PlaylistName, loadedConfig.PlaylistName)
	}
	if loadedConfig.HistorySize != 5 {
		t.Errorf("Ожидался HistorySize: 5, получено: %d", loadedConfig.HistorySize)
	}
	if loadedConfig.ShuffleSeed != 42 {
		t.Errorf("Ожидался ShuffleSeed: 42, получено: %d", loadedConfig.ShuffleSeed)
	}
	if loadedConfig.LogLevel != "debug" {
		t.Errorf("Ожидался LogLevel: debug, получено: %s", loadedConfig.LogLevel)
	}
	if len(loadedConfig.Songs) != 2 {
		t.Fatalf("Ожидалось 2 трека, получено %d", len(loadedConfig.Songs))
	}
	if loadedConfig.Songs[1].URL != "http://b" {
		t.Errorf("Ожидался URL: http://b, получено: %s", loadedConfig.Songs[1].URL)
	}
}

func TestDefaultValues(t *testing.T) {
	// Минимальная конфигурация без названия и размера журнала
	loadedConfig, err := LoadConfig(writeConfig(t, []byte("shuffle_seed: 7\n")))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.PlaylistName != DefaultPlaylistName {
		t.Errorf("Ожидалось название по умолчанию: %s, получено: %s", DefaultPlaylistName, loadedConfig.PlaylistName)
	}
	if loadedConfig.HistorySize != 10 {
		t.Errorf("Ожидался размер журнала по умолчанию 10, получено: %d", loadedConfig.HistorySize)
	}
	if len(loadedConfig.Songs) != 0 {
		t.Errorf("Ожидался пустой список треков, получено %d", len(loadedConfig.Songs))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.PlaylistName != DefaultPlaylistName {
		t.Errorf("Ожидалось название: %s, получено: %s", DefaultPlaylistName, cfg.PlaylistName)
	}

	total := 0
	for _, sc := range cfg.Songs {
		s, err := sc.Song()
		if err != nil {
			t.Fatalf("Ошибка создания трека: %v", err)
		}
		total += s.Length()
	}
	if total != 771 {
		t.Errorf("Ожидалась общая длина 771, получено %d", total)
	}
}

func TestSongConfigSong(t *testing.T) {
	local, err := SongConfig{Kind: KindLocal, Name: "A", Artist: "X", Length: 90, Path: "/a"}.Song()
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if local.Source() != song.SourceLocal || local.Location() != "/a" {
		t.Errorf("Ожидался локальный трек с путем /a, получено: %s %s", local.Source(), local.Location())
	}

	online, err := SongConfig{Kind: KindOnline, Name: "B", Artist: "Y", Length: 70, URL: "http://b"}.Song()
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if online.Source() != song.SourceOnline || online.Location() != "http://b" {
		t.Errorf("Ожидался онлайн-трек с URL http://b, получено: %s %s", online.Source(), online.Location())
	}

	_, err = SongConfig{Kind: "vinyl"}.Song()
	if !errors.Is(err, ErrUnknownSongKind) {
		t.Errorf("Ожидалась ошибка ErrUnknownSongKind, получено: %v", err)
	}
}

func TestLoadConfigNormalizesKind(t *testing.T) {
	content := []byte("songs:\n  - kind: \" Local \"\n    name: A\n    artist: X\n    length: 90\n    path: /a\n")

	loadedConfig, err := LoadConfig(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if loadedConfig.Songs[0].Kind != KindLocal {
		t.Errorf("Ожидался тип local, получено: %q", loadedConfig.Songs[0].Kind)
	}
}

func TestLoadConfigUnknownKind(t *testing.T) {
	content := []byte("songs:\n  - kind: cassette\n    name: A\n")

	_, err := LoadConfig(writeConfig(t, content))
	if !errors.Is(err, ErrUnknownSongKind) {
		t.Errorf("Ожидалась ошибка ErrUnknownSongKind, получено: %v", err)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/config.yaml")

	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке несуществующего файла")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	invalidYAML := `playlist_name: "test"
songs: [unclosed array
`
	_, err := LoadConfig(writeConfig(t, []byte(invalidYAML)))

	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("домашний каталог недоступен")
	}

	expanded, err := ExpandHome("~/.playlist.yaml")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if expanded != filepath.Join(home, ".playlist.yaml") {
		t.Errorf("Ожидался путь с раскрытой тильдой, получено: %s", expanded)
	}

	plain, _ := ExpandHome("/etc/playlist.yaml")
	if plain != "/etc/playlist.yaml" {
		t.Errorf("Путь без тильды не должен меняться, получено: %s", plain)
	}
}
