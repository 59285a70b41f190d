// Package listings reads input listing CSV files and writes the enriched
// output. Input columns are preserved verbatim; enrichment appends a fixed
// set of columns on the right.
package listings
