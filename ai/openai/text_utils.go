package openai

import "strings"

// maxQueryRunes bounds how much of a query is sent for profile extraction.
const maxQueryRunes = 2000

// scrubQuery collapses whitespace and truncates overly long queries.
// Punctuation is kept: "45-year-old" carries the age.
func scrubQuery(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxQueryRunes {
		s = string(r[:maxQueryRunes])
	}
	return s
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
