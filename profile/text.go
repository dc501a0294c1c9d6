package profile

import (
	"strings"
	"unicode"
)

const nukta = '\u093C'

// nuktaForms maps precomposed nukta consonants to their base letter so that
// "लड़की" and "लडकी" compare equal.
var nuktaForms = map[rune]rune{
	'\u0958': '\u0915', // क़
	'\u0959': '\u0916', // ख़
	'\u095A': '\u0917', // ग़
	'\u095B': '\u091C', // ज़
	'\u095C': '\u0921', // ड़
	'\u095D': '\u0922', // ढ़
	'\u095E': '\u092B', // फ़
	'\u095F': '\u092F', // य़
}

// normalizeText lowercases, folds nukta variants and maps Devanagari digits
// to ASCII.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r == nukta:
			continue
		case r >= '\u0966' && r <= '\u096F':
			r = '0' + (r - '\u0966')
		}
		if base, ok := nuktaForms[r]; ok {
			r = base
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tokenize splits normalized text into words. Combining marks stay attached
// to their consonant, and punctuation splits ("45-year-old" yields "45",
// "year", "old").
func tokenize(s string) []string {
	return strings.FieldsFunc(normalizeText(s), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r))
	})
}

func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// hasLetters reports whether s contains a letter in any script.
func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
