// Package recent содержит модель экрана недавно воспроизведенных треков для TUI
package recent

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/history"
	"github.com/hazadus/go-playlist/internal/utils"
)

// TimestampLayout - формат времени воспроизведения
const TimestampLayout = "2006-01-02 15:04:05"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	entryStyle = lipgloss.NewStyle().PaddingLeft(2)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			PaddingLeft(5)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// Model представляет модель экрана недавно воспроизведенных треков
type Model struct {
	entries []history.Entry
	width   int
}

// NewModel создает модель по журналу, упорядоченному от новых записей к старым
func NewModel(entries []history.Entry) *Model {
	return &Model{entries: entries}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "backspace":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}
		}
	}
	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	if len(m.entries) == 0 {
		b.WriteString(titleStyle.Render("⏱ Нет недавно воспроизведенных треков"))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("⏱ Недавно воспроизведенные (последние %d)", len(m.entries))))
		b.WriteString("\n")

		maxLen := 60
		if m.width > 10 {
			maxLen = m.width - 10
		}
		for _, entry := range m.entries {
			line := fmt.Sprintf("%s %s", entry.Song.Source().Icon(), entry.Song)
			b.WriteString(entryStyle.Render(utils.TruncateString(line, maxLen)))
			b.WriteString("\n")
			b.WriteString(timeStyle.Render("Воспроизведено: " + entry.PlayedAt.Format(TimestampLayout)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(controlsStyle.Render("Esc/q: назад к списку"))
	return b.String()
}
