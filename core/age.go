package core

import (
	"regexp"
	"strconv"
	"strings"
)

// AllAges is the targetAge sentinel for schemes without an age constraint.
const AllAges = "all ages"

var ageRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

// AgeRange is an inclusive applicant age window.
type AgeRange struct {
	Min int
	Max int
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// ParseTargetAge parses a scheme's targetAge field.
// It returns ok=false for the all-ages sentinel, an empty value, or anything
// that is not "min-max" with min <= max. Callers treat ok=false as
// "no age constraint".
func ParseTargetAge(targetAge string) (AgeRange, bool) {
	normalized := strings.ToLower(strings.TrimSpace(targetAge))
	if normalized == "" || normalized == AllAges || normalized == "all" {
		return AgeRange{}, false
	}

	m := ageRangePattern.FindStringSubmatch(normalized)
	if m == nil {
		return AgeRange{}, false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return AgeRange{}, false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return AgeRange{}, false
	}
	if lo > hi {
		return AgeRange{}, false
	}
	return AgeRange{Min: lo, Max: hi}, true
}
