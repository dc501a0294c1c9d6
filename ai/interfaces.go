package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the identifier of the embedding model in use.
	// Query-time and ingestion-time models must match for scores to mean anything.
	Model() string
}

// ProfileExtractor turns a free-text query into raw applicant attributes.
// Implementations must be thread-safe for concurrent use.
type ProfileExtractor interface {
	// ExtractProfile issues a single language-understanding call and returns
	// the validated attributes. Any response that is not exactly the expected
	// JSON object is an error; partial results are never returned.
	ExtractProfile(ctx context.Context, text string) (*ExtractedProfile, error)
}

// SchemeTranslator translates scheme display fields in one batch.
// Implementations must be thread-safe for concurrent use.
type SchemeTranslator interface {
	// TranslateSchemes translates every item into target using a single call.
	// Returned items carry the Index of the input they translate. Items the
	// model omitted are simply absent from the result.
	TranslateSchemes(ctx context.Context, target string, items []TranslationItem) ([]TranslationItem, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages the embedder, profile extractor and translator,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// ProfileExtractor returns the language-understanding service.
	ProfileExtractor() ProfileExtractor

	// SchemeTranslator returns the batch translation service.
	SchemeTranslator() SchemeTranslator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
