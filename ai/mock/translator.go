package mock

import (
	"context"
	"sync"

	"github.com/poiesic/yojana/ai"
)

// MockSchemeTranslator is a test double for ai.SchemeTranslator.
// Every call's arguments are recorded for assertions.
type MockSchemeTranslator struct {
	// TranslateSchemesFunc is called by TranslateSchemes if set.
	// If nil, returns no translations.
	TranslateSchemesFunc func(ctx context.Context, target string, items []ai.TranslationItem) ([]ai.TranslationItem, error)

	mu      sync.Mutex
	targets []string
	batches [][]ai.TranslationItem
}

// NewMockSchemeTranslator creates a mock translator with default behavior.
func NewMockSchemeTranslator() *MockSchemeTranslator {
	return &MockSchemeTranslator{}
}

// TranslateSchemes records the call and returns the injected result.
func (m *MockSchemeTranslator) TranslateSchemes(ctx context.Context, target string, items []ai.TranslationItem) ([]ai.TranslationItem, error) {
	m.mu.Lock()
	m.targets = append(m.targets, target)
	m.batches = append(m.batches, append([]ai.TranslationItem(nil), items...))
	m.mu.Unlock()

	if m.TranslateSchemesFunc != nil {
		return m.TranslateSchemesFunc(ctx, target, items)
	}
	return []ai.TranslationItem{}, nil
}

// CallCount returns the number of times TranslateSchemes was called.
func (m *MockSchemeTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

// LastBatch returns the target and items of the most recent call.
func (m *MockSchemeTranslator) LastBatch() (string, []ai.TranslationItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.batches) == 0 {
		return "", nil
	}
	n := len(m.batches) - 1
	return m.targets[n], m.batches[n]
}

// Reset clears recorded calls and custom functions.
func (m *MockSchemeTranslator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets = nil
	m.batches = nil
	m.TranslateSchemesFunc = nil
}
