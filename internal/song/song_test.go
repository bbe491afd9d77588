package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		length   int
		expected string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{183, "3:03"},
		{3599, "59:59"},
	}

	for _, tt := range tests {
		s := NewLocalSong("Name", "Artist", tt.length, "/music/name.mp3")
		assert.Equal(t, tt.expected, s.FormatLength(), "length %d", tt.length)
	}
}

func TestLocalSongPlay(t *testing.T) {
	s := NewLocalSong("A", "X", 90, "/a")

	out := s.Play()

	assert.Contains(t, out, "/a")
	assert.Contains(t, out, s.String())
	assert.Contains(t, out, "локальный файл")
	assert.Equal(t, "A - X [1:30]", s.String())
	assert.Equal(t, SourceLocal, s.Source())
	assert.Equal(t, "/a", s.Location())
	assert.Equal(t, "/a", s.FilePath())
}

func TestOnlineSongPlay(t *testing.T) {
	s := NewOnlineSong("B", "Y", 70, "http://b")

	out := s.Play()

	assert.Contains(t, out, "http://b")
	assert.Contains(t, out, "B - Y [1:10]")
	assert.Contains(t, out, "Потоковое")
	assert.NotContains(t, out, "локальный файл")
	assert.Equal(t, SourceOnline, s.Source())
	assert.Equal(t, "http://b", s.URL())
}

func TestPlayIsPure(t *testing.T) {
	s := NewOnlineSong("B", "Y", 70, "http://b")

	assert.Equal(t, s.Play(), s.Play())
	assert.Equal(t, 70, s.Length())
	assert.Equal(t, "B", s.Name())
	assert.Equal(t, "Y", s.Artist())
}

func TestIdentityIsNotStructural(t *testing.T) {
	a := NewLocalSong("Same", "Artist", 100, "/same.mp3")
	b := NewLocalSong("Same", "Artist", 100, "/same.mp3")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, Song(a) == Song(b))
}

func TestSourceStringAndIcon(t *testing.T) {
	assert.Equal(t, "local", SourceLocal.String())
	assert.Equal(t, "online", SourceOnline.String())
	assert.Equal(t, "unknown", Source(42).String())
	assert.Equal(t, "🎵", SourceLocal.Icon())
	assert.Equal(t, "🌐", SourceOnline.Icon())
}

func TestNoValidation(t *testing.T) {
	s := NewLocalSong("", "", 0, "")

	assert.Equal(t, " -  [0:00]", s.String())
	assert.Equal(t, 0, s.Length())
}
