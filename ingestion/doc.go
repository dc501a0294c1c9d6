// Package ingestion loads scheme records into the corpus.
//
// The Pipeline type manages the seeding workflow, including:
//   - Validating and normalizing scheme records
//   - Generating embeddings concurrently on a worker pool
//   - Storing the records and recording the embedding model in the manifest
//
// Records are read from YAML or JSON files with LoadFile. Seeding the same
// file twice updates records in place because scheme IDs are derived from
// their content.
package ingestion
