package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText приводит текст к упрощённому виду для сравнения:
// - нижний регистр
// - заменяет все не-буквенно-цифровые символы на пробелы
// - схлопывает пробелы
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens возвращает уникальные токены текста длиной не меньше minLen рун.
func Tokens(s string, minLen int) map[string]struct{} {
	out := make(map[string]struct{})
	norm := NormalizeText(s)
	if norm == "" {
		return out
	}
	for _, t := range strings.Split(norm, " ") {
		if len([]rune(t)) < minLen {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}
