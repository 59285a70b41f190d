// Package registry acquires the authoritative business-entity dataset and
// exposes it as an immutable, pre-indexed in-memory table.
//
// The dataset is a large public CSV cached on disk with a freshness window.
// A load filters rows to the configured jurisdiction, drops entities in
// terminal status (dissolved, withdrawn, revoked, noncompliant), precomputes
// the normalized fields the matcher compares against, and builds the city
// and name-prefix blocking indexes. The resulting Table is written once and
// never mutated, so any number of matchers may share it concurrently.
package registry
