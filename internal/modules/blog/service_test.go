package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/portfolio-space/core/internal/models"
)

func TestSortClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"default", "", "", "updated_at DESC"},
		{"created ascending", "createdAt", "asc", "created_at ASC"},
		{"read count", "readCount", "desc", "read_count DESC"},
		{"title case-insensitive order", "title", "ASC", "title ASC"},
		{"unknown column falls back", "'; DROP TABLE blogs; --", "asc", "updated_at ASC"},
		{"unknown order falls back", "publishedAt", "sideways", "published_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortClause(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestNextPublishedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("newly published gets stamped now", func(t *testing.T) {
		got := nextPublishedAt(nil, false, true, now)
		if assert.NotNil(t, got) {
			assert.Equal(t, now, *got)
		}
	})

	t.Run("already published keeps original stamp", func(t *testing.T) {
		got := nextPublishedAt(&earlier, true, true, now)
		if assert.NotNil(t, got) {
			assert.Equal(t, earlier, *got)
		}
	})

	t.Run("unpublishing clears the stamp", func(t *testing.T) {
		assert.Nil(t, nextPublishedAt(&earlier, true, false, now))
	})

	t.Run("staying unpublished stays nil", func(t *testing.T) {
		assert.Nil(t, nextPublishedAt(nil, false, false, now))
	})
}

func TestToActivityItem(t *testing.T) {
	updated := time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)

	published := models.BlogModel{
		Title:       "Shipping It",
		Slug:        "shipping-it",
		IsPublished: true,
	}
	published.ID = "b-1"
	published.UpdatedAt = updated

	draft := models.BlogModel{
		Title:       "Half Done",
		Slug:        "half-done",
		IsPublished: false,
	}
	draft.ID = "b-2"
	draft.UpdatedAt = updated

	assert.Equal(t, ActivityItem{
		ID: "b-1", Action: "published", BlogTitle: "Shipping It", BlogSlug: "shipping-it", Timestamp: updated,
	}, toActivityItem(&published))

	assert.Equal(t, ActivityItem{
		ID: "b-2", Action: "updated", BlogTitle: "Half Done", BlogSlug: "half-done", Timestamp: updated,
	}, toActivityItem(&draft))
}
