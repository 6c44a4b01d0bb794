package schema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inputPolicyOnce sync.Once
	inputPolicy     *bluemonday.Policy
)

// SanitizeInput strips markup from a typed value. Plain text passes through
// untouched, including surrounding whitespace, so length rules see exactly
// what the user typed.
func SanitizeInput(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return raw
	}
	return html.UnescapeString(inputSanitizer().Sanitize(raw))
}

func inputSanitizer() *bluemonday.Policy {
	inputPolicyOnce.Do(func() {
		inputPolicy = bluemonday.StrictPolicy()
	})
	return inputPolicy
}
