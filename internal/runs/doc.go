// Package runs persists a history of enrichment runs in SQLite so past
// match rates can be inspected and compared after the fact.
package runs
