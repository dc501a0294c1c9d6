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


// Package ai provides abstractions for the AI services the query pipeline
// depends on.
//
// The pipeline never talks to a model SDK directly. It depends on three
// narrow interfaces defined here:
//
//   - Embedder: turns the query into a vector using the corpus embedding model
//   - ProfileExtractor: one language-understanding call returning the
//     applicant attributes as a validated structure
//   - SchemeTranslator: one batched translation call per request
//
// AIProvider aggregates the three so a process can build them once at
// startup and inject them.
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs via langchaingo
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types. Mock constructors return CONCRETE types so tests can
// inject behavior and assert on call counts:
//
//	mockEmbed := mock.NewMockEmbedder()
//	mockEmbed.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) { ... }
//	count := mockEmbed.CallCount()
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "pension for widows")
//	profile, err := provider.ProfileExtractor().ExtractProfile(ctx, "I am a 45-year-old farmer in Bihar")
package ai
