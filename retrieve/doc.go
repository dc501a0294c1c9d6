// Package retrieve finds candidate schemes for a query by vector similarity.
//
// The query is embedded with the configured model and compared against the
// corpus after a coarse metadata pre-filter on target gender and state.
// Schemes that leave either attribute unset always pass the pre-filter.
package retrieve
