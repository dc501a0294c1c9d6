// Package reembed recomputes the vector of every scheme in the corpus with
// the configured embedding model and records that model in the manifest.
//
// Queries are rejected when the corpus manifest names a different embedding
// model than the one serving queries. Re-embedding is how a corpus is moved
// to a new model. The package also exports the retry, progress and vector
// helpers the seeding pipeline shares.
package reembed
