// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/song"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("#888888"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("#ff0000")).Bold(true)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// errSongNotFound - выбранного трека уже нет в плейлисте
var errSongNotFound = errors.New("трек не найден в плейлисте")

// ShowRecentMsg отправляется для перехода к экрану недавно воспроизведенных треков
type ShowRecentMsg struct{}

// songItem реализует интерфейс list.Item для трека
type songItem struct {
	position int // номер в плейлисте, с нуля
	song     song.Song
}

func (i songItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.song.Artist(), i.song.Name())
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct{}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	// Форматируем строку в виде таблицы: № | Источник | Исполнитель | Название | Длина
	str := fmt.Sprintf("%3d. %s %-20s %-40s %s",
		i.position+1,
		i.song.Source().Icon(),
		utils.TruncateString(i.song.Artist(), 20),
		utils.TruncateString(i.song.Name(), 40),
		i.song.FormatLength())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list     list.Model
	playlist *playlist.Playlist
	status   string
	err      error
	quitting bool
}

// NewModel создает новую модель списка треков
func NewModel(pl *playlist.Playlist) *Model {
	l := list.New(songItems(pl), songItemDelegate{}, 0, 0)
	l.Title = listTitle(pl)
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:     l,
		playlist: pl,
	}
}

// songItems преобразует треки плейлиста в элементы списка
func songItems(pl *playlist.Playlist) []list.Item {
	songs := pl.Songs()
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{position: i, song: s}
	}
	return items
}

// listTitle возвращает заголовок списка: название плейлиста и его общая длина
func listTitle(pl *playlist.Playlist) string {
	total, _ := pl.TotalLength()
	return fmt.Sprintf("%s [%s]", pl.Name(), utils.FormatDurationFromSeconds(total))
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы списка после изменения плейлиста
func (m *Model) RefreshData() {
	m.list.SetItems(songItems(m.playlist))
	m.list.Title = listTitle(m.playlist)
}

// Status возвращает текст последнего действия
func (m *Model) Status() string {
	return m.status
}

// Err возвращает ошибку последнего действия
func (m *Model) Err() error {
	return m.err
}

// setResult сохраняет результат действия для строки состояния
func (m *Model) setResult(status string, err error) {
	m.status = status
	m.err = err
	if err != nil {
		logging.Debug("tui: %v", err)
	}
}

// selected возвращает выбранный элемент списка
func (m *Model) selected() (songItem, bool) {
	item, ok := m.list.SelectedItem().(songItem)
	return item, ok
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 6) // Оставляем место для строки состояния и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра все клавиши принадлежат полю фильтра
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.selected(); ok {
				m.setResult(m.playlist.PlaySong(item.position))
			}
			return m, nil

		case "n":
			m.setResult(m.playlist.PlayNext())
			return m, nil

		case "s":
			m.playlist.Shuffle()
			m.RefreshData()
			m.setResult("🔀 Плейлист перемешан!", nil)
			return m, nil

		case "x":
			if item, ok := m.selected(); ok {
				if removed, ok := m.playlist.RemoveSongByID(item.song.ID()); ok {
					m.setResult(fmt.Sprintf("✓ Удален: %s", removed), nil)
				} else {
					m.setResult("", errSongNotFound)
				}
				m.RefreshData()
			}
			return m, nil

		case "r":
			return m, func() tea.Msg {
				return ShowRecentMsg{}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var status string
	switch {
	case errors.Is(m.err, playlist.ErrEmptyPlaylist):
		status = errorStyle.Render("✗ Плейлист пуст")
	case m.err != nil:
		status = errorStyle.Render("✗ " + m.err.Error())
	case m.status != "":
		status = statusStyle.Render(m.status)
	default:
		status = statusStyle.Render(m.playlist.String())
	}

	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: воспроизвести • n: следующий • s: перемешать • x: удалить • r: недавние • q: выход")
	return view + "\n" + status + "\n" + extraHelp
}
