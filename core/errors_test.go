package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
		kind string
	}{
		{name: "nil", err: nil, want: nil, kind: "none"},
		{name: "input", err: fmt.Errorf("%w: empty query", ErrInput), want: ErrInput, kind: "input"},
		{name: "profile", err: fmt.Errorf("%w: bad json", ErrProfileExtraction), want: ErrProfileExtraction, kind: "profile_extraction"},
		{name: "retrieval", err: fmt.Errorf("%w: empty embedding", ErrRetrieval), want: ErrRetrieval, kind: "retrieval"},
		{name: "translation", err: fmt.Errorf("%w: boom", ErrTranslation), want: ErrTranslation, kind: "translation"},
		{name: "unknown", err: errors.New("disk on fire"), want: ErrPipeline, kind: "pipeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
			assert.Equal(t, tt.kind, ErrorKind(tt.err))
		})
	}
}
