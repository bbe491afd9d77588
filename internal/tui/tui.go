// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	playlist *playlist.Playlist
	options  []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(pl *playlist.Playlist) *App {
	return &App{
		playlist: pl,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.playlist)

	p := tea.NewProgram(model, tuiApp.options...)

	_, err := p.Run()
	return err
}
