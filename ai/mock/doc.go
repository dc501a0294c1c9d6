// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.ProfileExtractor,
// ai.SchemeTranslator and ai.AIProvider for use in unit tests. The mocks allow
// tests to run without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockExtractor := mock.NewMockProfileExtractor()
//	mockExtractor.ExtractProfileFunc = func(ctx context.Context, text string) (*ai.ExtractedProfile, error) {
//	    return &ai.ExtractedProfile{Gender: "female", Language: "hi", State: "bihar"}, nil
//	}
//
//	// Check call counts
//	count := mockExtractor.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockProfileExtractor: Returns an unconstrained English profile
//   - MockSchemeTranslator: Returns no translations, so callers fall back to English
//   - MockProvider: Aggregates the three mocks
package mock
