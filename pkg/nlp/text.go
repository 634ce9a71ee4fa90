package nlp

import (
	"strings"
	"unicode/utf8"
)

// Fold lower-cases s for keyword scans. Works for Cyrillic as well as Latin.
func Fold(s string) string {
	return strings.ToLower(s)
}

// ContainsAny reports whether folded text contains any of the keywords as a substring.
// Keywords are expected to be folded already.
func ContainsAny(folded string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(folded, k) {
			return true
		}
	}
	return false
}

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// WordCount splits on whitespace.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SentenceCount counts sentence terminators; a non-empty text without any counts as one.
func SentenceCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n := 0
	prevTerm := false
	for _, r := range s {
		term := r == '.' || r == '!' || r == '?' || r == '\n'
		if term && !prevTerm {
			n++
		}
		prevTerm = term
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if last != '.' && last != '!' && last != '?' {
		n++
	}
	return n
}
