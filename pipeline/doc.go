// Package pipeline answers a natural-language welfare query.
//
// A query flows through five steps:
//
//	extract profile ──┐
//	                  ├─> search ─> eligibility ─> localize ─> assemble
//	embed query ──────┘
//
// Profile extraction and query embedding only need the raw query and run
// concurrently. The vector search needs the applicant's gender and region
// for its pre-filter, so it starts once both have finished.
//
// Every query ends in a core.QueryResult with at least one entry: real
// schemes, a localized "no schemes found" sentinel, or a localized error
// sentinel carrying the failure.
package pipeline
