package storage

import (
	"strings"

	"github.com/poiesic/yojana/core"
)

// Field names a scheme attribute the pre-filter can test.
type Field string

const (
	FieldTargetGender Field = "targetGender"
	FieldTargetState  Field = "targetState"
	FieldCategory     Field = "category"
)

// Condition tests a single field. An Absent condition matches when the
// field is empty; otherwise the field must equal Value, ignoring case.
type Condition struct {
	Field  Field
	Value  string
	Absent bool
}

// Eq matches schemes whose field equals value.
func Eq(field Field, value string) Condition {
	return Condition{Field: field, Value: value}
}

// Absent matches schemes that carry no value for field.
func Absent(field Field) Condition {
	return Condition{Field: field, Absent: true}
}

// Group is a disjunction of conditions.
type Group []Condition

// Filter is a conjunction of groups. The zero Filter matches everything.
type Filter struct {
	Groups []Group
}

// And returns a copy of f with one more OR-group appended.
func (f Filter) And(conditions ...Condition) Filter {
	groups := make([]Group, len(f.Groups), len(f.Groups)+1)
	copy(groups, f.Groups)
	return Filter{Groups: append(groups, Group(conditions))}
}

// IsEmpty reports whether the filter has no constraints.
func (f Filter) IsEmpty() bool {
	return len(f.Groups) == 0
}

// Matches reports whether scheme satisfies every group.
func (f Filter) Matches(scheme *core.Scheme) bool {
	for _, group := range f.Groups {
		if !group.matches(scheme) {
			return false
		}
	}
	return true
}

// String renders the filter for logs.
func (f Filter) String() string {
	if f.IsEmpty() {
		return "*"
	}
	groups := make([]string, len(f.Groups))
	for i, g := range f.Groups {
		conds := make([]string, len(g))
		for j, c := range g {
			if c.Absent {
				conds[j] = string(c.Field) + " absent"
			} else {
				conds[j] = string(c.Field) + "=" + c.Value
			}
		}
		groups[i] = "(" + strings.Join(conds, " OR ") + ")"
	}
	return strings.Join(groups, " AND ")
}

func (g Group) matches(scheme *core.Scheme) bool {
	for _, c := range g {
		if c.matches(scheme) {
			return true
		}
	}
	return false
}

func (c Condition) matches(scheme *core.Scheme) bool {
	value := strings.TrimSpace(fieldValue(scheme, c.Field))
	if c.Absent {
		return value == ""
	}
	return value != "" && strings.EqualFold(value, c.Value)
}

func fieldValue(scheme *core.Scheme, field Field) string {
	switch field {
	case FieldTargetGender:
		return string(scheme.TargetGender)
	case FieldTargetState:
		return scheme.TargetState
	case FieldCategory:
		return scheme.Category
	default:
		return ""
	}
}
