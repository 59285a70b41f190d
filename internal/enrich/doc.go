// Package enrich applies entity matching across a whole listings file,
// fanning records out over a worker pool and shaping matched registry
// fields into the columns appended to the output.
package enrich
