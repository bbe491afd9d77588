// Package menu содержит текстовое меню для управления плейлистом из терминала
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/metadata"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/song"
)

// errInputClosed сигнализирует, что ввод закончился (EOF)
var errInputClosed = errors.New("ввод закрыт")

// Menu читает команды пользователя и вызывает операции плейлиста
type Menu struct {
	playlist  *playlist.Playlist
	in        io.Reader
	out       io.Writer
	extractor *metadata.Extractor

	lines   chan string
	readErr error
	done    chan struct{}
}

// New создает меню для плейлиста, читающее ввод из in и пишущее в out
func New(pl *playlist.Playlist, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		playlist:  pl,
		in:        in,
		out:       out,
		extractor: metadata.NewExtractor(),
	}
}

// Run запускает цикл меню. Возвращает nil при выборе выхода или окончании
// ввода, либо ошибку контекста при отмене, в том числе во время ожидания ввода
func (m *Menu) Run(ctx context.Context) error {
	m.lines = make(chan string)
	m.done = make(chan struct{})
	defer close(m.done)
	go m.readLines()

	for {
		if err := ctx.Err(); err != nil {
			return m.finish(err)
		}

		renderMenu(m.out)
		choice, err := m.prompt(ctx, "\nВыберите пункт: ")
		if err != nil {
			return m.finish(err)
		}

		logging.Debug("выбран пункт меню %q", choice)

		switch choice {
		case "1":
			err = m.addSong(ctx, song.SourceLocal)
		case "2":
			err = m.addSong(ctx, song.SourceOnline)
		case "3":
			err = m.removeSong(ctx)
		case "4":
			RenderPlaylist(m.out, m.playlist)
		case "5":
			m.playlist.Shuffle()
			fmt.Fprintln(m.out, "🔀 Плейлист перемешан!")
		case "6":
			m.report(m.playlist.PlayNext())
		case "7":
			err = m.playByNumber(ctx)
		case "8":
			RenderRecent(m.out, m.playlist.RecentlyPlayed())
		case "9":
			fmt.Fprintf(m.out, "\n📋 %s\n", m.playlist)
		case "0":
			fmt.Fprintln(m.out, "\nСпасибо, что пользуетесь плейлистом!")
			return nil
		default:
			fmt.Fprintln(m.out, "✗ Неверный выбор. Попробуйте еще раз.")
		}

		if err != nil {
			return m.finish(err)
		}
	}
}

// finish завершает работу меню после отмены или ошибки чтения ввода
func (m *Menu) finish(err error) error {
	switch {
	case errors.Is(err, errInputClosed):
		fmt.Fprintln(m.out, "\nВвод завершен. До свидания!")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(m.out, "\n🚫 Операция отменена")
		return err
	}
	return fmt.Errorf("ошибка чтения ввода: %w", err)
}

// readLines читает ввод построчно и передает строки в m.lines.
// Канал закрывается, когда ввод закончился; m.readErr записывается до закрытия
func (m *Menu) readLines() {
	defer close(m.lines)
	scanner := bufio.NewScanner(m.in)
	for scanner.Scan() {
		select {
		case m.lines <- scanner.Text():
		case <-m.done:
			return
		}
	}
	m.readErr = scanner.Err()
}

// prompt выводит приглашение и ждет одну строку ввода без пробелов по краям
// или отмены контекста
func (m *Menu) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(m.out, text)
	select {
	case line, ok := <-m.lines:
		if !ok {
			if m.readErr != nil {
				return "", m.readErr
			}
			return "", errInputClosed
		}
		return strings.TrimSpace(line), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// addSong запрашивает поля трека и добавляет его в плейлист
func (m *Menu) addSong(ctx context.Context, source song.Source) error {
	name, err := m.prompt(ctx, "Название: ")
	if err != nil {
		return err
	}
	artist, err := m.prompt(ctx, "Исполнитель: ")
	if err != nil {
		return err
	}
	rawLength, err := m.prompt(ctx, "Длина (секунды): ")
	if err != nil {
		return err
	}

	length, convErr := strconv.Atoi(rawLength)
	if convErr != nil || length < 0 {
		logging.Debug("неверная длина трека %q", rawLength)
		fmt.Fprintln(m.out, "✗ Неверная длина")
		return nil
	}

	var s song.Song
	switch source {
	case song.SourceLocal:
		filePath, err := m.prompt(ctx, "Путь к файлу: ")
		if err != nil {
			return err
		}
		name, artist = m.fillFromTags(filePath, name, artist)
		s = song.NewLocalSong(name, artist, length, filePath)
	default:
		url, err := m.prompt(ctx, "URL: ")
		if err != nil {
			return err
		}
		s = song.NewOnlineSong(name, artist, length, url)
	}

	m.playlist.AddSong(s)
	logging.Info("добавлен трек %s (%s)", s.ID(), s.Source())
	fmt.Fprintf(m.out, "✓ Добавлен: %s\n", s)
	return nil
}

// fillFromTags дополняет пустые название и исполнителя данными из тегов файла
func (m *Menu) fillFromTags(filePath, name, artist string) (string, string) {
	if (name != "" && artist != "") || filePath == "" {
		return name, artist
	}

	meta := m.extractor.ExtractFromFile(filePath)
	if name == "" {
		name = meta.Title
	}
	if artist == "" {
		artist = meta.Artist
	}
	logging.Debug("метаданные для %s: %q - %q (из тегов: %t)", filePath, artist, name, meta.FromTags)
	return name, artist
}

// removeSong удаляет трек по названию
func (m *Menu) removeSong(ctx context.Context) error {
	name, err := m.prompt(ctx, "Название трека для удаления: ")
	if err != nil {
		return err
	}

	removed, ok := m.playlist.RemoveSong(name)
	if !ok {
		fmt.Fprintf(m.out, "✗ Трек '%s' не найден\n", name)
		return nil
	}

	logging.Info("удален трек %s", removed.ID())
	fmt.Fprintf(m.out, "✓ Удален: %s\n", removed)
	return nil
}

// playByNumber воспроизводит трек по номеру, начиная с единицы
func (m *Menu) playByNumber(ctx context.Context) error {
	raw, err := m.prompt(ctx, "Номер трека: ")
	if err != nil {
		return err
	}

	number, convErr := strconv.Atoi(raw)
	if convErr != nil {
		fmt.Fprintln(m.out, "✗ Неверный номер")
		return nil
	}

	m.report(m.playlist.PlaySong(number - 1))
	return nil
}

// report выводит результат воспроизведения или описание ошибки
func (m *Menu) report(out string, err error) {
	switch {
	case errors.Is(err, playlist.ErrEmptyPlaylist):
		fmt.Fprintln(m.out, "✗ Плейлист пуст")
	case errors.Is(err, playlist.ErrInvalidIndex):
		fmt.Fprintln(m.out, "✗ Неверный номер трека")
	case err != nil:
		logging.Error("ошибка воспроизведения: %v", err)
		fmt.Fprintf(m.out, "✗ Ошибка: %v\n", err)
	default:
		fmt.Fprintln(m.out, out)
	}
}
