package ingestion

import "errors"

var (
	// ErrSchemeRepositoryRequired is returned when a scheme repository is not provided.
	ErrSchemeRepositoryRequired = errors.New("scheme repository required")

	// ErrManifestRepositoryRequired is returned when a manifest repository is not provided.
	ErrManifestRepositoryRequired = errors.New("manifest repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrModelMismatch is returned when the corpus was embedded with a
	// different model than the one configured. Re-embed the corpus first.
	ErrModelMismatch = errors.New("corpus embedding model differs from configured model")

	// ErrUnsupportedFormat is returned for corpus files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported corpus file format")
)
