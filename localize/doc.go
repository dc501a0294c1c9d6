// Package localize renders retrieved schemes in the applicant's language.
//
// English needs no work. For Hindi and Bhojpuri the corpus pre-translation
// is preferred, but only when its name is actually written in Devanagari;
// records that echo English into a translated field are treated as
// untranslated. The remaining entries are translated with a single batched
// call whose results are matched back by index. An entry missing from the
// batch, or a failed batch, leaves English text in place. Nothing is written
// back to the corpus.
package localize
