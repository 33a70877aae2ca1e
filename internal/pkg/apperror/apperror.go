package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies service-level failures so callers can branch on the
// condition instead of parsing message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindRateLimited
	KindValidation
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is a tagged service error.
type Error struct {
	Kind    Kind
	Message string
	Details []string // field-level validation messages, in rule order
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Unauthorized reports a caller that is not authenticated.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized: Admin access required"}
}

// RateLimited reports a caller that exceeded its request quota.
func RateLimited() *Error {
	return &Error{Kind: KindRateLimited, Message: "Rate limit exceeded"}
}

// Validation aggregates field-level constraint violations.
func Validation(details []string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation errors: " + strings.Join(details, ", "),
		Details: details,
	}
}

// NotFound reports a missing entity.
func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// Persistence wraps a store failure in the uniform "Failed to <operation>"
// form. The message is expected to be pre-sanitized by the caller.
func Persistence(operation, message string, err error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Message: fmt.Sprintf("Failed to %s: %s", operation, message),
		Err:     err,
	}
}

// KindOf returns the Kind of err, or KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// DetailsOf returns validation details carried by err, if any.
func DetailsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
