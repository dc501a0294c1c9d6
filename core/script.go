package core

import "unicode"

// devanagari covers the main block and Devanagari Extended.
var devanagari = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
		{Lo: 0xA8E0, Hi: 0xA8FF, Stride: 1},
	},
}

// ContainsDevanagari reports whether s has at least one Devanagari rune.
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(devanagari, r) {
			return true
		}
	}
	return false
}

// InScript reports whether text carries characters of the script used by
// lang. English accepts anything. Hindi and Bhojpuri both use Devanagari.
func InScript(text string, lang Language) bool {
	switch lang {
	case LanguageHindi, LanguageBhojpuri:
		return ContainsDevanagari(text)
	default:
		return true
	}
}
