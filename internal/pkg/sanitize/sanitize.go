// Package sanitize cleans user-supplied text before it reaches the store.
// Content keeps markdown intact; only HTML-shaped and script-shaped
// fragments are removed.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	schemePattern    = regexp.MustCompile(`(?i)(javascript|data|vbscript):`)
	eventAttrPattern = regexp.MustCompile(`(?i)\bon\w+\s*=\s*[^>\s]*`)
	controlPattern   = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
)

// Content strips HTML tags, dangerous URI schemes, inline event-handler
// attributes and control characters from markdown content. Removal runs to a
// fixed point so that fragments reassembled by an earlier pass cannot
// survive, control stripping included: "ja\x01vascript:" collapses into a
// scheme that the next pass removes. Each pass only deletes, so the loop
// terminates. Whitespace and newlines are preserved to keep markdown
// semantics.
func Content(content string) string {
	if content == "" {
		return ""
	}

	s := content
	for {
		next := tagPattern.ReplaceAllString(s, "")
		next = schemePattern.ReplaceAllString(next, "")
		next = eventAttrPattern.ReplaceAllString(next, "")
		next = controlPattern.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}

	return s
}

// Input sanitizes short single-value fields (titles, excerpts, meta text).
// Same stripping rules as Content, plus surrounding whitespace is trimmed.
func Input(input string) string {
	return strings.TrimSpace(Content(input))
}

// ErrorMessage reduces an arbitrary error to a caller-safe message,
// hiding store schema and driver details.
func ErrorMessage(err error) string {
	if err == nil {
		return "Service temporarily unavailable"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"):
		return "Too many requests"
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return "Resource not found"
	case strings.Contains(msg, "denied"), strings.Contains(msg, "403"):
		return "Access denied"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return "Request timeout"
	case strings.Contains(msg, "connection"), strings.Contains(msg, "dial"):
		return "Network request failed"
	default:
		return "Service temporarily unavailable"
	}
}
