package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/portfolio-space/core/internal/modules/blog"
	"github.com/portfolio-space/core/internal/pkg/apperror"
	"github.com/portfolio-space/core/internal/pkg/ratelimit"
)

// Field length rules for blog payloads.
const (
	TitleMinLen           = 3
	TitleMaxLen           = 200
	ContentMinLen         = 10
	ContentMaxLen         = 50000
	ExcerptMaxLen         = 500
	MetaDescriptionMaxLen = 160
)

// Admin write-operation budget per caller.
const (
	RateLimitWindow = time.Minute
	RateLimitMax    = 100
)

// Context carries the request facts the validator needs. It is deliberately
// decoupled from the HTTP layer so services can be tested without a router.
type Context struct {
	ClientIP        string
	IsAuthenticated bool
	UserAgent       string
}

// Validator guards admin operations: session checks, rate limiting and
// payload validation.
type Validator struct {
	limiter *ratelimit.Limiter
}

// NewValidator builds a validator around the given limiter. Tests inject a
// limiter with a fake clock.
func NewValidator(limiter *ratelimit.Limiter) *Validator {
	return &Validator{limiter: limiter}
}

// NewDefaultValidator builds a validator with the production budget.
func NewDefaultValidator() *Validator {
	return NewValidator(ratelimit.New(RateLimitWindow, RateLimitMax))
}

// ValidateAccess checks the session before the rate budget: an
// unauthenticated caller is rejected without consuming a rate slot.
func (v *Validator) ValidateAccess(ctx Context) error {
	if !ctx.IsAuthenticated {
		return apperror.Unauthorized()
	}
	if !v.limiter.Allow(ctx.ClientIP) {
		return apperror.RateLimited()
	}
	return nil
}

// ValidateBlogData checks length rules on whichever fields are present and
// returns every violation, not just the first.
func (v *Validator) ValidateBlogData(f blog.ValidatableFields) []string {
	var details []string

	if f.Title != nil {
		n := len(strings.TrimSpace(*f.Title))
		if n < TitleMinLen || n > TitleMaxLen {
			details = append(details,
				fmt.Sprintf("title must be between %d and %d characters", TitleMinLen, TitleMaxLen))
		}
	}
	if f.Content != nil {
		n := len(strings.TrimSpace(*f.Content))
		if n < ContentMinLen || n > ContentMaxLen {
			details = append(details,
				fmt.Sprintf("content must be between %d and %d characters", ContentMinLen, ContentMaxLen))
		}
	}
	if f.Excerpt != nil && len(*f.Excerpt) > ExcerptMaxLen {
		details = append(details,
			fmt.Sprintf("excerpt must be at most %d characters", ExcerptMaxLen))
	}
	if f.MetaDescription != nil && len(*f.MetaDescription) > MetaDescriptionMaxLen {
		details = append(details,
			fmt.Sprintf("meta description must be at most %d characters", MetaDescriptionMaxLen))
	}

	return details
}
