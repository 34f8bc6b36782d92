// Package sanitize strips markup from user-provided text.
package sanitize

import (
	"html"
	"strings"

	"freelancer/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer builds a sanitizer that removes every HTML element.
// Script and style bodies are dropped along with their tags.
func NewTextSanitizer() service.TextSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns text with tags removed. The result is plain text, so the
// entities bluemonday escapes are decoded again.
func (s *textSanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}

	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
