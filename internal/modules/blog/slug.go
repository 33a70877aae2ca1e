package blog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/portfolio-space/core/internal/models"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// slugMaxAttempts bounds the numbered-suffix probe before falling back to a
// timestamp suffix.
const slugMaxAttempts = 10

// GenerateSlug derives a URL-safe slug from a title: lowercase, special
// characters stripped, whitespace collapsed to single hyphens.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// slugTaken reports whether a candidate slug is already used by a blog other
// than excludeID.
type slugTaken func(candidate, excludeID string) (bool, error)

// resolveUniqueSlug probes base, base-1, base-2, ... and returns the first
// free candidate. If all numbered candidates are taken it falls back to a
// timestamp suffix, which is unique for practical purposes. excludeID skips
// the row being updated so a blog can keep its own slug.
func resolveUniqueSlug(base, excludeID string, taken slugTaken) (string, error) {
	for i := 0; i < slugMaxAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		used, err := taken(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli()), nil
}

func (s *Service) ensureUniqueSlug(base, excludeID string) (string, error) {
	return resolveUniqueSlug(base, excludeID, func(candidate, excludeID string) (bool, error) {
		tx := s.db.Model(&models.BlogModel{}).Where("slug = ?", candidate)
		if excludeID != "" {
			tx = tx.Where("id <> ?", excludeID)
		}

		var count int64
		if err := tx.Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}
