package blog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World!", "hello-world"},
		{"punctuation stripped", "Go, Gin & GORM: a primer", "go-gin-gorm-a-primer"},
		{"collapses whitespace", "  many   spaces\tand tabs  ", "many-spaces-and-tabs"},
		{"keeps existing hyphens", "already-slugged title", "already-slugged-title"},
		{"collapses hyphen runs", "a -- b --- c", "a-b-c"},
		{"no leading or trailing hyphen", "!wow! such title !", "wow-such-title"},
		{"digits preserved", "Top 10 Tips for 2025", "top-10-tips-for-2025"},
		{"all special chars", "!!!???", ""},
		{"unicode stripped", "héllo wörld", "hllo-wrld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{"Hello World!", "Top 10 Tips for 2025", "a -- b --- c"}
	for _, title := range titles {
		once := GenerateSlug(title)
		assert.Equal(t, once, GenerateSlug(once), "slug of %q should be stable", title)
	}
}

func TestResolveUniqueSlug(t *testing.T) {
	takenFrom := func(existing ...string) slugTaken {
		set := map[string]bool{}
		for _, s := range existing {
			set[s] = true
		}
		return func(candidate, _ string) (bool, error) {
			return set[candidate], nil
		}
	}

	t.Run("free base is returned unchanged", func(t *testing.T) {
		got, err := resolveUniqueSlug("hello-world", "", takenFrom())
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("collision climbs the numbered ladder", func(t *testing.T) {
		got, err := resolveUniqueSlug("hello-world", "", takenFrom("hello-world"))
		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", got)

		got, err = resolveUniqueSlug("hello-world", "",
			takenFrom("hello-world", "hello-world-1", "hello-world-2"))
		require.NoError(t, err)
		assert.Equal(t, "hello-world-3", got)
	})

	t.Run("exhausted ladder falls back to timestamp suffix", func(t *testing.T) {
		existing := []string{"hello-world"}
		for i := 1; i < slugMaxAttempts; i++ {
			existing = append(existing, fmt.Sprintf("hello-world-%d", i))
		}

		got, err := resolveUniqueSlug("hello-world", "", takenFrom(existing...))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "hello-world-"))
		assert.NotContains(t, existing, got)

		suffix, err := strconv.ParseInt(strings.TrimPrefix(got, "hello-world-"), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, suffix, int64(slugMaxAttempts))
	})

	t.Run("store errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := resolveUniqueSlug("hello-world", "", func(string, string) (bool, error) {
			return false, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("excludeID reaches the store", func(t *testing.T) {
		var seen string
		_, err := resolveUniqueSlug("hello-world", "blog-7", func(_, excludeID string) (bool, error) {
			seen = excludeID
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "blog-7", seen)
	})
}
