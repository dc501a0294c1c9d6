package storage

import (
	"context"

	"github.com/poiesic/yojana/core"
)

// SchemeRepository provides operations for managing the scheme corpus.
// Implementations must be thread-safe and support concurrent access.
type SchemeRepository interface {
	// Find returns schemes matching filter, ordered by cosine similarity to
	// vector (highest first), up to limit results. The similarity is attached
	// to each result and is never written back to storage.
	// Records without a vector or with a different dimension are skipped.
	Find(ctx context.Context, filter Filter, vector []float32, limit int) ([]*core.ScoredScheme, error)

	// AddSchemes stores one or more schemes, replacing any existing record
	// with the same ID. For schemes with ID=0, a content-based ID is derived
	// from the scheme key. InsertedAt is preserved across replacement.
	// Returns the schemes with IDs and timestamps populated.
	AddSchemes(ctx context.Context, schemes ...*core.Scheme) ([]*core.Scheme, error)

	// UpdateSchemes updates existing schemes.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any scheme doesn't exist.
	UpdateSchemes(ctx context.Context, schemes ...*core.Scheme) ([]*core.Scheme, error)

	// DeleteSchemes removes schemes by their IDs.
	// Returns ErrNotFound if any scheme doesn't exist.
	DeleteSchemes(ctx context.Context, ids ...core.ID) error

	// GetScheme retrieves a single scheme by ID.
	// Returns ErrNotFound if the scheme doesn't exist.
	GetScheme(ctx context.Context, id core.ID) (*core.Scheme, error)

	// GetSchemes retrieves multiple schemes by their IDs.
	// Returns only the schemes that exist (no error for missing schemes).
	GetSchemes(ctx context.Context, ids ...core.ID) ([]*core.Scheme, error)

	// ListSchemes returns up to limit schemes matching filter in ID order,
	// without vectors. Returns ErrInvalidQuery if limit is not positive.
	ListSchemes(ctx context.Context, filter Filter, limit int) ([]*core.Scheme, error)

	// GetAllSchemes retrieves every scheme in ID order.
	GetAllSchemes(ctx context.Context) ([]*core.Scheme, error)

	// CountSchemes returns the number of stored schemes.
	CountSchemes(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// ManifestRepository persists the corpus manifest.
type ManifestRepository interface {
	// SaveManifest persists the manifest, stamping UpdatedAt.
	SaveManifest(ctx context.Context, manifest *core.Manifest) error

	// LoadManifest retrieves the manifest.
	// Returns nil, nil if no manifest has been saved.
	LoadManifest(ctx context.Context) (*core.Manifest, error)
}
