package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/hazadus/go-playlist/internal/history"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// TimestampLayout - формат времени воспроизведения в журнале
const TimestampLayout = "2006-01-02 15:04:05"

var separator = strings.Repeat("=", 60)

// RenderPlaylist выводит содержимое плейлиста, нумеруя треки с единицы
func RenderPlaylist(w io.Writer, pl *playlist.Playlist) {
	songs := pl.Songs()
	if len(songs) == 0 {
		fmt.Fprintf(w, "\nПлейлист '%s' пуст\n", pl.Name())
		return
	}

	fmt.Fprintf(w, "\nПлейлист: %s\n", pl.Name())
	fmt.Fprintln(w, separator)
	for i, s := range songs {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, s.Source().Icon(), s)
	}
}

// RenderRecent выводит журнал воспроизведения, начиная с последней записи
func RenderRecent(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "\n⏱ Нет недавно воспроизведенных треков")
		return
	}

	fmt.Fprintf(w, "\n⏱ Недавно воспроизведенные (последние %d)\n", len(entries))
	fmt.Fprintln(w, separator)
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s\n", entry.Song.Source().Icon(), entry.Song)
		fmt.Fprintf(w, "   Воспроизведено: %s\n", entry.PlayedAt.Format(TimestampLayout))
	}
}

// renderMenu выводит пункты главного меню
func renderMenu(w io.Writer) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "МУЗЫКАЛЬНЫЙ ПЛЕЙЛИСТ")
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "1. Добавить локальный трек")
	fmt.Fprintln(w, "2. Добавить онлайн-трек")
	fmt.Fprintln(w, "3. Удалить трек")
	fmt.Fprintln(w, "4. Показать плейлист")
	fmt.Fprintln(w, "5. Перемешать плейлист")
	fmt.Fprintln(w, "6. Воспроизвести следующий трек")
	fmt.Fprintln(w, "7. Воспроизвести трек по номеру")
	fmt.Fprintln(w, "8. Недавно воспроизведенные")
	fmt.Fprintln(w, "9. Информация о плейлисте")
	fmt.Fprintln(w, "0. Выход")
	fmt.Fprintln(w, separator)
}
