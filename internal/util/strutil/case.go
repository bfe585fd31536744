// Package strutil provides the identifier-case helpers used by the
// generators.
package strutil

import (
	"strings"
	"unicode"
)

// ToPascalCase converts an identifier to PascalCase for use as an
// exported method name. Underscore-separated segments are joined and
// each segment's first letter is upcased; interior capitalization is
// preserved (httpTimeout -> HttpTimeout, retry_count -> RetryCount).
func ToPascalCase(s string) string {
	var result strings.Builder
	upperNext := true

	for _, r := range s {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			result.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
