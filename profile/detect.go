package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/yojana/core"
)

// MaxFallbackAge bounds ages read from text by DetectAge.
const MaxFallbackAge = 120

var agePattern = regexp.MustCompile(`(\d{1,3})\s*-?\s*(?:years|year|yrs|yr|साल|वर्ष|बरस)`)

// DetectLanguage classifies text by script and dialect markers. Text with no
// Devanagari is English. Devanagari text containing any Bhojpuri marker
// token is Bhojpuri; other Devanagari text is Hindi.
func DetectLanguage(text string) core.Language {
	if !core.ContainsDevanagari(text) {
		return core.LanguageEnglish
	}
	for _, tok := range tokenize(text) {
		if _, ok := dialectSet[tok]; ok {
			return core.LanguageBhojpuri
		}
	}
	return core.LanguageHindi
}

// DetectGender looks for gendered tokens. ok is false when the text has
// none, or has both male and female tokens.
func DetectGender(text string) (gender core.Gender, ok bool) {
	var male, female bool
	for _, tok := range tokenize(text) {
		if _, hit := maleSet[tok]; hit {
			male = true
		}
		if _, hit := femaleSet[tok]; hit {
			female = true
		}
	}
	switch {
	case male && !female:
		return core.GenderMale, true
	case female && !male:
		return core.GenderFemale, true
	default:
		return core.GenderAll, false
	}
}

// DetectRegion finds the first state or union territory named in text, in
// English or Devanagari. At the same position the longest spelling wins.
func DetectRegion(text string) (string, bool) {
	padded := " " + joinTokens(tokenize(text)) + " "

	best, bestPos, bestLen := "", -1, 0
	for _, alias := range regionIdx {
		pos := strings.Index(padded, alias.padded)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos || (pos == bestPos && len(alias.padded) > bestLen) {
			best, bestPos, bestLen = alias.name, pos, len(alias.padded)
		}
	}
	return best, bestPos >= 0
}

// NormalizeRegion maps a free-form region name onto the vocabulary.
// "all", empty, and unknown names return ok=false.
func NormalizeRegion(name string) (string, bool) {
	key := " " + joinTokens(tokenize(name)) + " "
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	for _, alias := range regionIdx {
		if alias.padded == key {
			return alias.name, true
		}
	}
	return "", false
}

// DetectAge reads "<n> years" style phrases, including Hindi and Bhojpuri
// units. Values above MaxFallbackAge are ignored.
func DetectAge(text string) (int, bool) {
	matches := agePattern.FindAllStringSubmatch(normalizeText(text), -1)
	for _, m := range matches {
		age, err := strconv.Atoi(m[1])
		if err != nil || age > MaxFallbackAge {
			continue
		}
		return age, true
	}
	return 0, false
}
