// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
)

const (
	// DefaultBatchSize is the default number of schemes handed to fn per call
	DefaultBatchSize = 100
)

// SchemeIterator walks the whole corpus in fixed-size batches.
type SchemeIterator struct {
	repo      storage.SchemeRepository
	batchSize int
}

// NewSchemeIterator creates an iterator. A non-positive batchSize uses DefaultBatchSize.
func NewSchemeIterator(repo storage.SchemeRepository, batchSize int) *SchemeIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &SchemeIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach calls fn with consecutive batches in ID order. It stops at the
// first error from fn or when ctx is done.
func (it *SchemeIterator) ForEach(ctx context.Context, fn func([]*core.Scheme) error) error {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return err
	}

	schemes, err := it.repo.GetAllSchemes(ctx)
	if err != nil {
		return err
	}

	for i := 0; i < len(schemes); i += it.batchSize {
		end := min(i+it.batchSize, len(schemes))

		if err := fn(schemes[i:end]); err != nil {
			return err
		}

		// Check context after each batch
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}
