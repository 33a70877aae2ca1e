package sanitize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_StripsHTMLTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain markdown untouched", "# Title\n\nSome *bold* text.", "# Title\n\nSome *bold* text."},
		{"simple tag", "hello <b>world</b>", "hello world"},
		{"script tag", "before<script>alert(1)</script>after", "beforealert(1)after"},
		{"javascript scheme", "[link](javascript:alert(1))", "[link](alert(1))"},
		{"split scheme", "javascjavascript:ript:alert(1)", "alert(1)"},
		{"scheme split by control char", "ja\x01vascript:alert(1)", "alert(1)"},
		{"tag split by control char", "<scr\x02ipt>alert(1)", "alert(1)"},
		{"event handler", `img onerror=alert(1) src`, "img  src"},
		{"control characters", "a\x00b\x07c", "abc"},
		{"newlines preserved", "line one\n\nline two\n", "line one\n\nline two\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Content(tt.in))
		})
	}
}

func TestContent_Idempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome *bold* text.",
		"<div onclick=evil>markdown</div>",
		"jonclick=avascript:payload",
		"ja\x01vascript:alert(1)",
		"da\x00ta:text/html,payload",
		"<<script>script>nested<</script>/script>",
		"plain text with <b>tags</b> and javascript: schemes",
	}

	for _, in := range inputs {
		once := Content(in)
		assert.Equal(t, once, Content(once), "Content must be idempotent for %q", in)
	}
}

func TestContent_NoTagPatternSurvives(t *testing.T) {
	inputs := []string{
		"<a href=x>y</a>",
		"<<b>a>text<</b>/a>",
		"before <img src=x onerror=alert(1)> after",
	}

	for _, in := range inputs {
		assert.NotRegexp(t, `<[^>]*>`, Content(in))
	}
}

func TestInput_Trims(t *testing.T) {
	assert.Equal(t, "Hello World!", Input("  Hello World!  "))
	assert.Equal(t, "title", Input("<em>title</em>"))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		in   error
		want string
	}{
		{errors.New("rate limit exceeded"), "Too many requests"},
		{errors.New("record not found"), "Resource not found"},
		{errors.New("context deadline exceeded"), "Request timeout"},
		{errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), "Network request failed"},
		{errors.New("Error 1062 (23000): Duplicate entry"), "Service temporarily unavailable"},
		{nil, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage(tt.in))
	}
}
