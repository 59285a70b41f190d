// Package preflight provides readiness checks for the filesystem paths and
// the registry data source that enrichment runs depend on. The CLI status
// command uses them to surface problems before a long run is started.
package preflight
