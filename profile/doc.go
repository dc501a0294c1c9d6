// Package profile turns a free-text welfare query into an ApplicantProfile.
//
// Extraction is one language-model call whose JSON output is validated by the
// ai layer. The result is then cross-checked against the query text:
//
//   - Language comes from the script. Latin-only text is English; Devanagari
//     text is Bhojpuri when it contains a dialect marker and Hindi otherwise.
//   - Gender comes from a closed lexicon of gendered words in English and
//     Devanagari when exactly one gender is mentioned.
//   - Region comes from a fixed vocabulary of Indian states and union
//     territories, matched in either script.
//   - Age falls back to a "<n> years" pattern when the model returned none.
//
// A query that fails extraction is reported as core.ErrProfileExtraction.
package profile
