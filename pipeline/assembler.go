package pipeline

import (
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/localize"
)

// Wire IDs of the synthetic sentinel entries. Consumers should branch on
// QueryResult.Kind, not on these.
const (
	NoResultsID = "no-results"
	ErrorID     = "error"
)

// Assemble tags localized schemes with the language and region they were
// produced for.
func Assemble(schemes []core.LocalizedScheme, profile *core.ApplicantProfile) *core.QueryResult {
	return &core.QueryResult{
		Kind:     core.ResultOK,
		Schemes:  schemes,
		Language: profile.Language,
		Region:   profile.Region,
	}
}

// NoResults is the result for a query where nothing survived filtering.
// It carries one entry whose name is the localized "no schemes" message.
func NoResults(profile *core.ApplicantProfile) *core.QueryResult {
	return &core.QueryResult{
		Kind:     core.ResultEmpty,
		Schemes:  []core.LocalizedScheme{sentinel(NoResultsID, localize.NoResultsMessage(profile.Language))},
		Language: profile.Language,
		Region:   profile.Region,
	}
}

// Failure is the result for a query that could not be answered. It has the
// same shape as the other results plus the error.
func Failure(err error, lang core.Language, region string) *core.QueryResult {
	if lang == "" {
		lang = core.LanguageEnglish
	}
	if region == "" {
		region = core.RegionAll
	}
	return &core.QueryResult{
		Kind:     core.ResultError,
		Schemes:  []core.LocalizedScheme{sentinel(ErrorID, localize.ErrorMessage(lang))},
		Language: lang,
		Region:   region,
		Err:      err,
	}
}

func sentinel(id, message string) core.LocalizedScheme {
	return core.LocalizedScheme{
		Id:          id,
		Name:        message,
		Eligibility: "",
		Benefits:    "",
		ApplyLink:   "",
	}
}
