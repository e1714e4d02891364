// Package normalize turns free-form user input such as
// "1/1/2021 to 2/2/2021" into the single-space separated form the
// calculator splits into dates.
package normalize

import (
	"regexp"
	"strings"
)

// DefaultWords are the separator words recognised between two dates.
var DefaultWords = []string{"to", "and"}

// Normalizer collapses runs of separators into a single space.
type Normalizer struct {
	pattern *regexp.Regexp
}

// New builds a Normalizer for the given separator words. Whitespace and
// "-" are always separators. Words match case-insensitively and only as
// whole tokens, so "today" is left alone.
func New(words ...string) *Normalizer {
	alternatives := []string{`\s`, `-`}
	var quoted []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) > 0 {
		alternatives = append(alternatives, `\b(?:`+strings.Join(quoted, "|")+`)\b`)
	}
	return &Normalizer{
		pattern: regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)+`),
	}
}

// Normalize replaces every run of separators with one space, then trims
// and lower-cases the result.
func (n *Normalizer) Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(n.pattern.ReplaceAllString(s, " ")))
}

var defaultNormalizer = New(DefaultWords...)

// Input normalizes s with the default separator words.
func Input(s string) string {
	return defaultNormalizer.Normalize(s)
}

// Split returns the space separated fields of a normalized line.
func Split(s string) []string {
	return strings.Fields(s)
}
