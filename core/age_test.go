package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTargetAge(t *testing.T) {
	tests := []struct {
		name      string
		targetAge string
		want      AgeRange
		wantOK    bool
	}{
		{name: "simple range", targetAge: "18-60", want: AgeRange{Min: 18, Max: 60}, wantOK: true},
		{name: "spaces around dash", targetAge: " 18 - 40 ", want: AgeRange{Min: 18, Max: 40}, wantOK: true},
		{name: "trailing words", targetAge: "60-120 years", want: AgeRange{Min: 60, Max: 120}, wantOK: true},
		{name: "single year range", targetAge: "10-10", want: AgeRange{Min: 10, Max: 10}, wantOK: true},
		{name: "all ages sentinel", targetAge: "all ages", wantOK: false},
		{name: "all ages mixed case", targetAge: "All Ages", wantOK: false},
		{name: "all", targetAge: "all", wantOK: false},
		{name: "empty", targetAge: "", wantOK: false},
		{name: "inverted range", targetAge: "60-18", wantOK: false},
		{name: "free text", targetAge: "adults only", wantOK: false},
		{name: "single number", targetAge: "18", wantOK: false},
		{name: "open ended", targetAge: "18+", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTargetAge(tt.targetAge)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAgeRange_Contains(t *testing.T) {
	r := AgeRange{Min: 18, Max: 60}
	assert.True(t, r.Contains(18))
	assert.True(t, r.Contains(60))
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(17))
	assert.False(t, r.Contains(61))
}
