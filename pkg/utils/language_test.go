package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain english", "show me tour packages", "english"},
		{"plain urdu", "hunza jana hai, sasta batao", "urdu"},
		{"mixed when english leads", "show me sasta packages", "mixed"},
		{"no keywords defaults to english", "hunza in march 2026", "english"},
		{"empty defaults to english", "", "english"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}

func TestHasUrduContent(t *testing.T) {
	assert.True(t, HasUrduContent("packages dikhao"))
	assert.False(t, HasUrduContent("show me packages"))
}
