// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/recent"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// RecentScreen - экран недавно воспроизведенных треков
	RecentScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	playlist       *playlist.Playlist
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	recentModel    *recent.Model
	lastSize       *tea.WindowSizeMsg
}

// NewMainModel создает новую главную модель
func NewMainModel(pl *playlist.Playlist) *MainModel {
	return &MainModel{
		playlist:       pl,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(pl),
		recentModel:    nil, // Будет создана при переходе на экран
	}
}

// CurrentScreen возвращает текущий экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.ShowRecentMsg:
		m.currentScreen = RecentScreen
		m.recentModel = recent.NewModel(m.playlist.RecentlyPlayed())
		if m.lastSize != nil {
			m.recentModel, _ = m.recentModel.Update(*m.lastSize)
		}
		return m, m.recentModel.Init()

	case recent.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.recentModel = nil
		if m.lastSize != nil {
			m.tracklistModel, cmd = m.tracklistModel.Update(*m.lastSize)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		// Запоминаем размер, чтобы передать его экранам, созданным позже
		m.lastSize = &msg
	}

	// Передаем сообщение активной модели
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case RecentScreen:
		if m.recentModel != nil {
			m.recentModel, cmd = m.recentModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case RecentScreen:
		if m.recentModel != nil {
			return m.recentModel.View()
		}
		return "Ошибка: модель журнала не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
