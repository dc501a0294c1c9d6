package storage

import (
	"testing"

	"github.com/poiesic/yojana/core"
	"github.com/stretchr/testify/assert"
)

func genderGroup(g string) Filter {
	return Filter{}.And(
		Eq(FieldTargetGender, g),
		Eq(FieldTargetGender, "all"),
		Absent(FieldTargetGender),
	)
}

func TestFilter_Empty(t *testing.T) {
	f := Filter{}
	assert.True(t, f.IsEmpty())
	assert.True(t, f.Matches(&core.Scheme{TargetGender: core.GenderMale}))
	assert.Equal(t, "*", f.String())
}

func TestFilter_GenderGroup(t *testing.T) {
	f := genderGroup("female")

	tests := []struct {
		name   string
		gender core.Gender
		want   bool
	}{
		{"exact", core.GenderFemale, true},
		{"all", core.GenderAll, true},
		{"absent", "", true},
		{"other", core.GenderMale, false},
		{"case insensitive", "Female", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Matches(&core.Scheme{TargetGender: tt.gender}))
		})
	}
}

func TestFilter_GroupsAreAnded(t *testing.T) {
	f := genderGroup("male").And(
		Eq(FieldTargetState, "bihar"),
		Eq(FieldTargetState, "all"),
		Absent(FieldTargetState),
	)

	assert.True(t, f.Matches(&core.Scheme{TargetGender: core.GenderMale, TargetState: "bihar"}))
	assert.True(t, f.Matches(&core.Scheme{}))
	assert.False(t, f.Matches(&core.Scheme{TargetGender: core.GenderMale, TargetState: "kerala"}))
	assert.False(t, f.Matches(&core.Scheme{TargetGender: core.GenderFemale, TargetState: "bihar"}))
}

func TestFilter_WhitespaceIsAbsent(t *testing.T) {
	f := Filter{}.And(Absent(FieldTargetState))
	assert.True(t, f.Matches(&core.Scheme{TargetState: "  "}))
}

func TestFilter_AndDoesNotAlias(t *testing.T) {
	base := genderGroup("male")
	a := base.And(Eq(FieldTargetState, "bihar"))
	b := base.And(Eq(FieldTargetState, "kerala"))

	assert.Len(t, base.Groups, 1)
	assert.Equal(t, "bihar", a.Groups[1][0].Value)
	assert.Equal(t, "kerala", b.Groups[1][0].Value)
}

func TestFilter_String(t *testing.T) {
	f := Filter{}.And(Eq(FieldTargetState, "bihar"), Absent(FieldTargetState))
	assert.Equal(t, "(targetState=bihar OR targetState absent)", f.String())
}

func TestFilter_Category(t *testing.T) {
	f := Filter{}.And(Eq(FieldCategory, "pension"))

	assert.True(t, f.Matches(&core.Scheme{Category: "pension"}))
	assert.True(t, f.Matches(&core.Scheme{Category: "Pension"}))
	assert.False(t, f.Matches(&core.Scheme{Category: "health"}))
	assert.False(t, f.Matches(&core.Scheme{}), "an untagged scheme is in no category")
	assert.Equal(t, "(category=pension)", f.String())
}
