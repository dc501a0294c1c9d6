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

// Package storage provides the storage abstraction layer for the scheme corpus.
//
// This package defines repository interfaces that decouple storage implementation
// from the query pipeline. It allows for different storage backends (BadgerDB,
// in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return these interfaces to enforce
// abstraction:
//
//	schemes, manifests, backend, err := badger.NewRepositories(path)
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Architecture
//
//   - SchemeRepository: corpus records and filtered vector search
//   - ManifestRepository: records which embedding model built the corpus
//   - Filter: the coarse metadata pre-filter applied before similarity ranking
//
// A Filter is an AND of OR-groups. The retriever builds one group per
// constrained attribute so that a scheme matches when the attribute equals
// the applicant's value, equals "all", or is absent from the record:
//
//	f := storage.Filter{}.And(
//	    storage.Eq(storage.FieldTargetGender, "female"),
//	    storage.Eq(storage.FieldTargetGender, "all"),
//	    storage.Absent(storage.FieldTargetGender),
//	)
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
