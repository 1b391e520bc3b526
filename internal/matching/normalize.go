// Package matching implements the product matching engine: text
// normalization, quantity extraction, candidate validation, and the
// purchase-link resolver that reconciles stored products against the Naver
// shopping search API.
package matching

import (
	"regexp"
	"strings"
)

// Package-level compiled patterns, applied in a fixed order by Normalize.
var (
	parenPattern   = regexp.MustCompile(`\(.*?\)`)
	bracketPattern = regexp.MustCompile(`\[.*?\]`)
	corpPattern    = regexp.MustCompile(`주식회사|유한회사|농업회사법인`)
	symbolPattern  = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// Normalize cleans a product or manufacturer name for comparison:
// parenthesized and bracketed segments are dropped (shortest match, not
// nested), corporate-entity suffixes are removed, and any character that is
// not a letter, digit, or whitespace becomes a single space. The result is
// trimmed. Normalize is idempotent and never fails; empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = parenPattern.ReplaceAllString(text, "")
	text = bracketPattern.ReplaceAllString(text, "")
	text = corpPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripSpaces removes every whitespace rune, for space-insensitive
// containment checks.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
