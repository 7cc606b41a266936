// Package textutil holds the small text heuristics shared by the
// extractor, searcher, and claim fallbacks: sentence splitting, keyword
// extraction, and a common stopword set.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "been": {}, "were": {},
	"their": {}, "which": {}, "about": {}, "would": {}, "there": {},
	"could": {}, "other": {}, "these": {}, "than": {}, "then": {},
	"them": {}, "some": {}, "what": {}, "when": {}, "into": {}, "more": {},
	"also": {}, "over": {}, "such": {}, "only": {}, "most": {}, "will": {},
}

// IsStopword reports whether w (lowercased) is in the common stopword set.
func IsStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}

// Keywords extracts the non-stopword words longer than minLen from text,
// lowercased, in order of first appearance, without duplicates.
func Keywords(text string, minLen int) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	seen := map[string]struct{}{}
	var out []string
	for _, w := range words {
		w = strings.ToLower(w)
		if len(w) <= minLen || IsStopword(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Sentences splits text on sentence delimiters (. ! ?) and returns the
// trimmed pieces at least minLen characters long, in order.
func Sentences(text string, minLen int) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(s) >= minLen {
			out = append(out, s)
		}
	}
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return out
}

// CollapseWhitespace normalizes every run of whitespace in s to a single
// space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most n bytes on a rune boundary.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
