// Package playlist содержит логику управления плейлистом: упорядоченный
// список треков и журнал недавно воспроизведенных
package playlist

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hazadus/go-playlist/internal/history"
	"github.com/hazadus/go-playlist/internal/song"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	// ErrInvalidIndex возвращается, если номер трека вне диапазона
	ErrInvalidIndex = errors.New("неверный номер трека")
	// ErrEmptyPlaylist возвращается при попытке воспроизведения из пустого плейлиста
	ErrEmptyPlaylist = errors.New("плейлист пуст")
)

// ShuffleFunc переставляет n элементов с помощью swap. Сигнатура совпадает с rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// NewSeededShuffler возвращает детерминированную функцию перемешивания
func NewSeededShuffler(seed uint64) ShuffleFunc {
	r := rand.New(rand.NewPCG(seed, seed))
	return r.Shuffle
}

// Option настраивает Playlist при создании
type Option func(*Playlist)

// WithShuffler задает функцию перемешивания
func WithShuffler(shuffle ShuffleFunc) Option {
	return func(p *Playlist) {
		if shuffle != nil {
			p.shuffle = shuffle
		}
	}
}

// WithClock задает источник текущего времени для журнала воспроизведения
func WithClock(now func() time.Time) Option {
	return func(p *Playlist) {
		if now != nil {
			p.now = now
		}
	}
}

// WithHistoryCapacity задает размер журнала недавно воспроизведенных треков
func WithHistoryCapacity(capacity int) Option {
	return func(p *Playlist) {
		p.recent = history.New(capacity)
	}
}

// Playlist - упорядоченный изменяемый список треков. Порядок добавления
// совпадает с порядком воспроизведения, дубликаты допускаются.
// Playlist не потокобезопасен и принадлежит одной сессии
type Playlist struct {
	name    string
	songs   []song.Song
	recent  *history.Log
	shuffle ShuffleFunc
	now     func() time.Time
}

// New создает пустой плейлист
func New(name string, opts ...Option) *Playlist {
	p := &Playlist{
		name:    name,
		songs:   make([]song.Song, 0),
		recent:  history.New(history.DefaultCapacity),
		shuffle: rand.Shuffle,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name возвращает название плейлиста
func (p *Playlist) Name() string {
	return p.name
}

// Len возвращает количество треков в плейлисте
func (p *Playlist) Len() int {
	return len(p.songs)
}

// Songs возвращает копию списка треков в порядке воспроизведения
func (p *Playlist) Songs() []song.Song {
	result := make([]song.Song, len(p.songs))
	copy(result, p.songs)
	return result
}

// AddSong добавляет трек в конец плейлиста
func (p *Playlist) AddSong(s song.Song) {
	p.songs = append(p.songs, s)
}

// RemoveSong удаляет первый трек, название которого совпадает с name без
// учета регистра. Возвращает удаленный трек и true, либо nil и false
func (p *Playlist) RemoveSong(name string) (song.Song, bool) {
	for i, s := range p.songs {
		if strings.EqualFold(s.Name(), name) {
			p.songs = slices.Delete(p.songs, i, i+1)
			return s, true
		}
	}
	return nil, false
}

// RemoveSongByID удаляет трек с идентификатором id. Возвращает удаленный
// трек и true, либо nil и false, если такого трека в плейлисте нет
func (p *Playlist) RemoveSongByID(id uuid.UUID) (song.Song, bool) {
	i := slices.IndexFunc(p.songs, func(s song.Song) bool {
		return s.ID() == id
	})
	if i < 0 {
		return nil, false
	}
	s := p.songs[i]
	p.songs = slices.Delete(p.songs, i, i+1)
	return s, true
}

// Shuffle перемешивает плейлист
func (p *Playlist) Shuffle() {
	p.shuffle(len(p.songs), func(i, j int) {
		p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
	})
}

// PlaySong воспроизводит трек с номером index (с нуля) и записывает его в журнал
func (p *Playlist) PlaySong(index int) (string, error) {
	if index < 0 || index >= len(p.songs) {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	s := p.songs[index]
	out := s.Play()
	p.recent.Add(history.Entry{Song: s, PlayedAt: p.now()})
	return out, nil
}

// PlayNext воспроизводит первый трек плейлиста
func (p *Playlist) PlayNext() (string, error) {
	if len(p.songs) == 0 {
		return "", ErrEmptyPlaylist
	}
	return p.PlaySong(0)
}

// RecentlyPlayed возвращает журнал воспроизведения от новых записей к старым
func (p *Playlist) RecentlyPlayed() []history.Entry {
	return p.recent.Recent()
}

// TotalLength возвращает общую длину плейлиста в секундах и в отформатированном виде
func (p *Playlist) TotalLength() (int, string) {
	total := 0
	for _, s := range p.songs {
		total += s.Length()
	}
	return total, utils.FormatTotal(total)
}

// String возвращает краткую сводку о плейлисте
func (p *Playlist) String() string {
	_, length := p.TotalLength()
	return fmt.Sprintf("Плейлист '%s' - треков: %d, %s", p.name, p.Len(), length)
}
