package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
)

const (
	defaultConfigPath = "~/.playlist.yaml"
)

// Application хранит конфигурацию и плейлист текущей сессии
type Application struct {
	Config   *config.Config
	Playlist *playlist.Playlist

	configPath string
	in         io.Reader
	out        io.Writer
}

// NewApplication создает приложение со стандартным вводом и выводом
func NewApplication() *Application {
	return &Application{
		configPath: defaultConfigPath,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// Init загружает конфигурацию и заполняет плейлист
func (app *Application) Init() error {
	cfg, err := loadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	pl, err := newPlaylist(cfg)
	if err != nil {
		return err
	}

	app.Config = cfg
	app.Playlist = pl
	return nil
}

// loadConfig загружает конфигурацию; если файла нет, используется конфигурация по умолчанию
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Info("файл конфигурации %s не найден, используются настройки по умолчанию", path)
		return config.Default(), nil
	}
	return cfg, err
}

// newPlaylist создает плейлист по конфигурации
func newPlaylist(cfg *config.Config) (*playlist.Playlist, error) {
	if cfg.LogLevel != "" {
		if level, ok := logging.ParseLevel(cfg.LogLevel); ok {
			logging.SetLevel(level)
		} else {
			logging.Warn("неизвестный уровень логирования %q, оставлен текущий", cfg.LogLevel)
		}
	}

	opts := []playlist.Option{playlist.WithHistoryCapacity(cfg.HistorySize)}
	if cfg.ShuffleSeed != 0 {
		opts = append(opts, playlist.WithShuffler(playlist.NewSeededShuffler(cfg.ShuffleSeed)))
	}

	pl := playlist.New(cfg.PlaylistName, opts...)
	for i, sc := range cfg.Songs {
		s, err := sc.Song()
		if err != nil {
			return nil, fmt.Errorf("трек #%d: %w", i+1, err)
		}
		pl.AddSong(s)
	}

	logging.Debug("плейлист %q создан, треков: %d", pl.Name(), pl.Len())
	return pl, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication()
	if err := app.createRootCommand(ctx).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
