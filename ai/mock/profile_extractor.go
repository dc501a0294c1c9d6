package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/yojana/ai"
)

// MockProfileExtractor is a test double for ai.ProfileExtractor.
// It allows custom behavior injection via function fields.
type MockProfileExtractor struct {
	// ExtractProfileFunc is called by ExtractProfile if set.
	// If nil, returns an unconstrained English profile.
	ExtractProfileFunc func(ctx context.Context, text string) (*ai.ExtractedProfile, error)

	callCount atomic.Int64
}

// NewMockProfileExtractor creates a mock profile extractor with default behavior.
func NewMockProfileExtractor() *MockProfileExtractor {
	return &MockProfileExtractor{}
}

// ExtractProfile returns the injected result or a default profile.
func (m *MockProfileExtractor) ExtractProfile(ctx context.Context, text string) (*ai.ExtractedProfile, error) {
	m.callCount.Add(1)

	if m.ExtractProfileFunc != nil {
		return m.ExtractProfileFunc(ctx, text)
	}

	return &ai.ExtractedProfile{
		Gender:   "all",
		Language: "en",
		State:    "all",
	}, nil
}

// CallCount returns the number of times ExtractProfile was called.
func (m *MockProfileExtractor) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockProfileExtractor) Reset() {
	m.callCount.Store(0)
	m.ExtractProfileFunc = nil
}
