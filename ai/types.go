package ai

// ExtractedProfile is the validated output of a profile extraction call.
// Values are exactly what the model returned; cross-checking against the
// query text happens in the profile package.
type ExtractedProfile struct {
	// Age is nil when the model found no age.
	Age *int

	// Gender is one of "male", "female" or "all".
	Gender string

	// Language is one of "en", "hi" or "bho".
	Language string

	// State is a free-form region name, "all" when none was mentioned.
	State string
}

// TranslationItem is one scheme's display fields in a translation batch.
// Index is caller-supplied and echoed back so results can be matched
// positionally.
type TranslationItem struct {
	Index       int
	Name        string
	Eligibility string
	Benefits    string
}

// LanguageNames maps supported language codes to the names used in prompts.
var LanguageNames = map[string]string{
	"en":  "English",
	"hi":  "Hindi",
	"bho": "Bhojpuri",
}
