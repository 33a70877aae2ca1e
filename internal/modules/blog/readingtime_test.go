package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content", "", 1},
		{"single word", "hello", 1},
		{"under one minute", strings.Repeat("word ", 199), 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"just over one minute", strings.Repeat("word ", 201), 2},
		{"several minutes", strings.Repeat("word ", 1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateReadingTime(tt.content))
		})
	}
}

func TestCalculateReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for _, words := range []int{0, 50, 200, 500, 2000, 10000} {
		got := CalculateReadingTime(strings.Repeat("w ", words))
		assert.GreaterOrEqual(t, got, prev, "reading time should not decrease with more words")
		prev = got
	}
}
