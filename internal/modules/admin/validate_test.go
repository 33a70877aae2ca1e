package admin

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-space/core/internal/modules/blog"
	"github.com/portfolio-space/core/internal/pkg/apperror"
	"github.com/portfolio-space/core/internal/pkg/ratelimit"
)

func strPtr(s string) *string { return &s }

func TestValidateAccess(t *testing.T) {
	t.Run("unauthenticated is rejected before rate limiting", func(t *testing.T) {
		v := NewValidator(ratelimit.New(time.Minute, 1))

		err := v.ValidateAccess(Context{ClientIP: "1.2.3.4", IsAuthenticated: false})
		require.Error(t, err)
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

		// the rejected call must not have consumed the single rate slot
		err = v.ValidateAccess(Context{ClientIP: "1.2.3.4", IsAuthenticated: true})
		assert.NoError(t, err)
	})

	t.Run("authenticated within budget passes", func(t *testing.T) {
		v := NewDefaultValidator()
		for i := 0; i < RateLimitMax; i++ {
			require.NoError(t, v.ValidateAccess(Context{ClientIP: "5.6.7.8", IsAuthenticated: true}))
		}
	})

	t.Run("over budget is rate limited", func(t *testing.T) {
		v := NewValidator(ratelimit.New(time.Minute, 3))
		ctx := Context{ClientIP: "9.9.9.9", IsAuthenticated: true}
		for i := 0; i < 3; i++ {
			require.NoError(t, v.ValidateAccess(ctx))
		}
		err := v.ValidateAccess(ctx)
		require.Error(t, err)
		assert.Equal(t, apperror.KindRateLimited, apperror.KindOf(err))
	})

	t.Run("budget is per caller", func(t *testing.T) {
		v := NewValidator(ratelimit.New(time.Minute, 1))
		require.NoError(t, v.ValidateAccess(Context{ClientIP: "10.0.0.1", IsAuthenticated: true}))
		assert.NoError(t, v.ValidateAccess(Context{ClientIP: "10.0.0.2", IsAuthenticated: true}))
	})
}

func TestValidateBlogData(t *testing.T) {
	v := NewDefaultValidator()

	tests := []struct {
		name   string
		fields blog.ValidatableFields
		want   []string
	}{
		{
			"valid full payload",
			blog.ValidatableFields{
				Title:           strPtr("A perfectly fine title"),
				Content:         strPtr("Content that is long enough to pass."),
				Excerpt:         strPtr("short excerpt"),
				MetaDescription: strPtr("short description"),
			},
			nil,
		},
		{
			"absent fields are not checked",
			blog.ValidatableFields{},
			nil,
		},
		{
			"title too short",
			blog.ValidatableFields{Title: strPtr("ab")},
			[]string{"title must be between 3 and 200 characters"},
		},
		{
			"title whitespace does not count",
			blog.ValidatableFields{Title: strPtr("   a   ")},
			[]string{"title must be between 3 and 200 characters"},
		},
		{
			"title too long",
			blog.ValidatableFields{Title: strPtr(strings.Repeat("x", 201))},
			[]string{"title must be between 3 and 200 characters"},
		},
		{
			"content too short",
			blog.ValidatableFields{Content: strPtr("too short")},
			[]string{"content must be between 10 and 50000 characters"},
		},
		{
			"excerpt too long",
			blog.ValidatableFields{Excerpt: strPtr(strings.Repeat("x", 501))},
			[]string{"excerpt must be at most 500 characters"},
		},
		{
			"meta description too long",
			blog.ValidatableFields{MetaDescription: strPtr(strings.Repeat("x", 161))},
			[]string{"meta description must be at most 160 characters"},
		},
		{
			"all violations reported at once",
			blog.ValidatableFields{
				Title:           strPtr("x"),
				Content:         strPtr("y"),
				Excerpt:         strPtr(strings.Repeat("x", 501)),
				MetaDescription: strPtr(strings.Repeat("x", 161)),
			},
			[]string{
				"title must be between 3 and 200 characters",
				"content must be between 10 and 50000 characters",
				"excerpt must be at most 500 characters",
				"meta description must be at most 160 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidateBlogData(tt.fields))
		})
	}
}

func TestValidateBlogDataBoundaries(t *testing.T) {
	v := NewDefaultValidator()

	assert.Empty(t, v.ValidateBlogData(blog.ValidatableFields{Title: strPtr(strings.Repeat("x", 3))}))
	assert.Empty(t, v.ValidateBlogData(blog.ValidatableFields{Title: strPtr(strings.Repeat("x", 200))}))
	assert.Empty(t, v.ValidateBlogData(blog.ValidatableFields{Content: strPtr(strings.Repeat("x", 10))}))
	assert.Empty(t, v.ValidateBlogData(blog.ValidatableFields{Excerpt: strPtr(strings.Repeat("x", 500))}))
	assert.Empty(t, v.ValidateBlogData(blog.ValidatableFields{MetaDescription: strPtr(strings.Repeat("x", 160))}))
}
