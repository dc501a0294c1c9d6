package core

import (
	"strings"
	"unicode"
)

// categoryAliases maps the category slugs the web front end sends to the
// names used in the corpus.
var categoryAliases = map[string]string{
	"digitalliteracy": "digital",
	"sanitation":      "hygiene",
	"livelihood":      "employment",
	"womenpower":      "women",
	"socialsecurity":  "pension",
}

// NormalizeCategory lower-cases a category, drops whitespace and resolves
// known aliases, so "Social Security" and "socialsecurity" both become
// "pension".
func NormalizeCategory(category string) string {
	key := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, category)
	if canonical, ok := categoryAliases[key]; ok {
		return canonical
	}
	return key
}
