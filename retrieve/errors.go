package retrieve

import "errors"

var (
	// ErrEmbedderRequired is returned when a Retriever is built without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrRepositoryRequired is returned when a Retriever is built without a repository.
	ErrRepositoryRequired = errors.New("scheme repository is required")

	// ErrEmptyEmbedding is returned when the embedder yields no vector.
	ErrEmptyEmbedding = errors.New("embedding is empty")

	// ErrModelMismatch is returned when the corpus was embedded with a
	// different model than the one in use.
	ErrModelMismatch = errors.New("embedding model does not match corpus")
)
