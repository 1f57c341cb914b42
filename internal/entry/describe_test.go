package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{10, "10 B"},
		{1200, "1.2 kB"},
		{1_200_000, "1.2 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestGuessType(t *testing.T) {
	t.Run("known extension", func(t *testing.T) {
		got, ok := GuessType("img/logo.png")
		assert.True(t, ok)
		assert.Equal(t, "image/png", got)
	})

	t.Run("parameters stripped", func(t *testing.T) {
		got, ok := GuessType("index.html")
		assert.True(t, ok)
		assert.Equal(t, "text/html", got)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, ok := GuessType("archive.zz-not-a-real-ext")
		assert.False(t, ok)
	})

	t.Run("no extension", func(t *testing.T) {
		_, ok := GuessType("zz-no-extension")
		assert.False(t, ok)
	})
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		ok    bool
		want  string
	}{
		{"subtype", "image/png", true, "png"},
		{"main type fallback", "application/", true, "application"},
		{"bare type", "text", true, "text"},
		{"lookup failed", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeLabel(tt.guess, tt.ok))
		})
	}
}
