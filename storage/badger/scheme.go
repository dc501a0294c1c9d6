package badger

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
)

// SchemeRepository implements storage.SchemeRepository for BadgerDB.
type SchemeRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SchemeRepository = (*SchemeRepository)(nil)

// NewSchemeRepository creates a new SchemeRepository.
func NewSchemeRepository(backend *Backend) (*SchemeRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &SchemeRepository{
		backend: backend,
		logger:  slog.Default().With("component", "scheme-repository"),
	}, nil
}

// Close releases resources. SchemeRepository has no resources to release;
// the backend is closed by its owner.
func (r *SchemeRepository) Close() error {
	return nil
}

// Find scans the corpus, applies filter, and ranks the survivors by cosine
// similarity to vector.
func (r *SchemeRepository) Find(ctx context.Context, filter storage.Filter, vector []float32, limit int) ([]*core.ScoredScheme, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var results []*core.ScoredScheme
	skipped := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = schemeKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var scheme *core.Scheme
			err := iter.Item().Value(func(val []byte) error {
				var err error
				scheme, err = storage.UnmarshalScheme(val)
				return err
			})
			if err != nil {
				return err
			}

			if !filter.Matches(scheme) {
				continue
			}

			similarity, ok := cosineSimilarity(vector, scheme.Vector)
			if !ok {
				skipped++
				continue
			}

			// The vector is only needed for scoring.
			scheme.Vector = nil
			results = append(results, &core.ScoredScheme{
				Scheme:     scheme,
				Similarity: similarity,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		r.logger.Warn("skipped schemes with missing or incompatible vectors",
			"skipped", skipped, "dimensions", len(vector))
	}

	// Sort by similarity descending, ID ascending on ties
	slices.SortStableFunc(results, func(a, b *core.ScoredScheme) int {
		if c := cmp.Compare(b.Similarity, a.Similarity); c != 0 {
			return c
		}
		return cmp.Compare(a.Scheme.Id, b.Scheme.Id)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	r.logger.Debug("find complete", "filter", filter.String(), "hits", len(results))
	return results, nil
}

// AddSchemes stores schemes, replacing existing records with the same ID.
func (r *SchemeRepository) AddSchemes(ctx context.Context, schemes ...*core.Scheme) ([]*core.Scheme, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, scheme := range schemes {
			// Use content-based ID if not set
			if scheme.Id == 0 {
				scheme.Id = core.IDFromContent(scheme.Key())
			}

			key := makeSchemeKey(scheme.Id)
			old, err := readScheme(tx, key)
			if err != nil {
				return err
			}

			switch {
			case old != nil:
				scheme.InsertedAt = old.InsertedAt
			case scheme.InsertedAt.IsZero():
				scheme.InsertedAt = now
			}
			scheme.UpdatedAt = now

			if err := writeScheme(tx, key, scheme); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return schemes, err
}

// UpdateSchemes updates existing schemes.
func (r *SchemeRepository) UpdateSchemes(ctx context.Context, schemes ...*core.Scheme) ([]*core.Scheme, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, scheme := range schemes {
			key := makeSchemeKey(scheme.Id)

			old, err := readScheme(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			scheme.InsertedAt = old.InsertedAt
			scheme.UpdatedAt = now

			if err := writeScheme(tx, key, scheme); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return schemes, err
}

// DeleteSchemes removes schemes by their IDs.
func (r *SchemeRepository) DeleteSchemes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSchemeKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetScheme retrieves a single scheme by ID.
func (r *SchemeRepository) GetScheme(ctx context.Context, id core.ID) (*core.Scheme, error) {
	var result *core.Scheme
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readScheme(tx, makeSchemeKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSchemes retrieves multiple schemes by their IDs.
func (r *SchemeRepository) GetSchemes(ctx context.Context, ids ...core.ID) ([]*core.Scheme, error) {
	var result []*core.Scheme
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			scheme, err := readScheme(tx, makeSchemeKey(id))
			if err != nil {
				return err
			}
			if scheme != nil {
				result = append(result, scheme)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListSchemes scans the corpus in ID order and keeps the first limit
// schemes that match filter.
func (r *SchemeRepository) ListSchemes(ctx context.Context, filter storage.Filter, limit int) ([]*core.Scheme, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var results []*core.Scheme
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = schemeKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid() && len(results) < limit; iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var scheme *core.Scheme
			err := iter.Item().Value(func(val []byte) error {
				var err error
				scheme, err = storage.UnmarshalScheme(val)
				return err
			})
			if err != nil {
				return err
			}
			if !filter.Matches(scheme) {
				continue
			}
			scheme.Vector = nil
			results = append(results, scheme)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("list complete", "filter", filter.String(), "hits", len(results))
	return results, nil
}

// GetAllSchemes retrieves every scheme in ID order.
func (r *SchemeRepository) GetAllSchemes(ctx context.Context) ([]*core.Scheme, error) {
	var results []*core.Scheme
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = schemeKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var scheme *core.Scheme
			err := iter.Item().Value(func(val []byte) error {
				var err error
				scheme, err = storage.UnmarshalScheme(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, scheme)
		}
		return nil
	}, false)
	return results, err
}

// CountSchemes counts scheme keys without decoding values.
func (r *SchemeRepository) CountSchemes(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = schemeKeyPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// readScheme reads a scheme from the transaction.
// Returns nil, nil when the key does not exist.
func readScheme(tx *badger.Txn, key []byte) (*core.Scheme, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var scheme *core.Scheme
	err = item.Value(func(val []byte) error {
		var err error
		scheme, err = storage.UnmarshalScheme(val)
		return err
	})
	return scheme, err
}

func writeScheme(tx *badger.Txn, key []byte, scheme *core.Scheme) error {
	return tx.Set(key, storage.MarshalScheme(scheme))
}
