package eligibility

import (
	"testing"

	"github.com/poiesic/yojana/core"
	"github.com/stretchr/testify/assert"
)

func scored(name, targetAge string, similarity float32) *core.ScoredScheme {
	return &core.ScoredScheme{
		Scheme:     &core.Scheme{Name: name, TargetAge: targetAge},
		Similarity: similarity,
	}
}

func age(v int) *core.ApplicantProfile {
	return &core.ApplicantProfile{Age: &v}
}

func names(in []*core.ScoredScheme) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.Scheme.Name
	}
	return out
}

func TestApply_SimilarityFloorIsExclusive(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("above", "", 0.51),
		scored("at", "", 0.5),
		scored("below", "", 0.2),
	}

	got := Apply(candidates, &core.ApplicantProfile{})
	assert.Equal(t, []string{"above"}, names(got))
}

func TestApply_AgeRange(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("atal pension", "18-40", 0.9),
		scored("old age", "60-120", 0.8),
		scored("everyone", "all ages", 0.7),
		scored("inclusive bound", "45-60", 0.65),
	}

	got := Apply(candidates, age(45))
	assert.Equal(t, []string{"everyone", "inclusive bound"}, names(got))
}

func TestApply_UnknownAgeKeepsAll(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("a", "18-40", 0.9),
		scored("b", "60-120", 0.8),
	}

	got := Apply(candidates, &core.ApplicantProfile{})
	assert.Len(t, got, 2)

	got = Apply(candidates, nil)
	assert.Len(t, got, 2)
}

func TestApply_UnparseableRangeFailsOpen(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("garbage", "adults", 0.9),
		scored("inverted", "60-18", 0.9),
		scored("empty", "", 0.9),
		scored("all", "all", 0.9),
	}

	got := Apply(candidates, age(99))
	assert.Len(t, got, 4)
}

func TestApply_PreservesOrder(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("first", "", 0.95),
		scored("dropped", "", 0.3),
		scored("second", "", 0.9),
		scored("third", "", 0.6),
	}

	got := Apply(candidates, age(30))
	assert.Equal(t, []string{"first", "second", "third"}, names(got))
}

func TestApply_Idempotent(t *testing.T) {
	candidates := []*core.ScoredScheme{
		scored("a", "18-40", 0.9),
		scored("b", "", 0.4),
		scored("c", "41-60", 0.7),
		scored("d", "all ages", 0.55),
	}
	profile := age(30)

	once := Apply(candidates, profile)
	twice := Apply(once, profile)
	assert.Equal(t, once, twice)
	assert.Len(t, candidates, 4, "input is not modified")
}

func TestApply_Empty(t *testing.T) {
	assert.Empty(t, Apply(nil, age(30)))
	assert.Empty(t, Apply([]*core.ScoredScheme{scored("low", "", 0.1)}, age(30)))
}
