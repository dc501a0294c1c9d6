package localize

import "github.com/poiesic/yojana/core"

var noResultsMessages = map[core.Language]string{
	core.LanguageEnglish:  "Sorry, no schemes found matching your profile.",
	core.LanguageHindi:    "क्षमा करें, आपकी प्रोफाइल से मेल खाने वाली कोई योजना नहीं मिली।",
	core.LanguageBhojpuri: "माफ करीं, रउआ प्रोफाइल से मेल खाए वाला कवनो योजना ना मिलल।",
}

var errorMessages = map[core.Language]string{
	core.LanguageEnglish:  "Something went wrong while searching for schemes. Please try again.",
	core.LanguageHindi:    "योजनाएँ खोजते समय कुछ गड़बड़ हो गई। कृपया फिर से प्रयास करें।",
	core.LanguageBhojpuri: "योजना खोजत घरी कुछ गड़बड़ हो गइल। फेर से कोसिस करीं।",
}

// NoResultsMessage returns the "no schemes found" text for lang, falling
// back to English.
func NoResultsMessage(lang core.Language) string {
	if msg, ok := noResultsMessages[lang]; ok {
		return msg
	}
	return noResultsMessages[core.LanguageEnglish]
}

// ErrorMessage returns the generic failure text for lang, falling back to
// English.
func ErrorMessage(lang core.Language) string {
	if msg, ok := errorMessages[lang]; ok {
		return msg
	}
	return errorMessages[core.LanguageEnglish]
}
