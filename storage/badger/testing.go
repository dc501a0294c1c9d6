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


package badger

import "github.com/poiesic/yojana/storage"

// NewMemoryRepositories creates in-memory scheme and manifest repositories for testing.
// Returns schemeRepo, manifestRepo, backend, and error.
// Caller must close the scheme repo and backend when done.
func NewMemoryRepositories() (storage.SchemeRepository, storage.ManifestRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}
	return newRepositories(backend)
}

// NewRepositories opens an on-disk database at path and returns its repositories.
// Caller must close the scheme repo and backend when done.
func NewRepositories(path string) (storage.SchemeRepository, storage.ManifestRepository, *Backend, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, nil, nil, err
	}
	return newRepositories(backend)
}

func newRepositories(backend *Backend) (storage.SchemeRepository, storage.ManifestRepository, *Backend, error) {
	schemeRepo, err := NewSchemeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}
	return schemeRepo, NewManifestRepository(backend), backend, nil
}
