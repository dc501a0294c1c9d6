// Package eligibility applies the deterministic cutoffs that follow
// retrieval: a similarity floor and the scheme's target age range.
package eligibility

import "github.com/poiesic/yojana/core"

// SimilarityFloor is the exclusive lower bound on similarity. Candidates at
// or below it are dropped.
const SimilarityFloor float32 = 0.5

// Apply returns the candidates that clear the similarity floor and whose age
// range admits the applicant, in their original order. An unknown age or an
// unparseable range never excludes a scheme. The input is not modified.
func Apply(candidates []*core.ScoredScheme, profile *core.ApplicantProfile) []*core.ScoredScheme {
	survivors := make([]*core.ScoredScheme, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Scheme == nil {
			continue
		}
		if c.Similarity <= SimilarityFloor {
			continue
		}
		if !ageAllowed(c.Scheme, profile) {
			continue
		}
		survivors = append(survivors, c)
	}
	return survivors
}

func ageAllowed(scheme *core.Scheme, profile *core.ApplicantProfile) bool {
	if profile == nil || profile.Age == nil {
		return true
	}
	r, ok := core.ParseTargetAge(scheme.TargetAge)
	if !ok {
		return true
	}
	return r.Contains(*profile.Age)
}
