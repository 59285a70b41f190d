// Package normalize converts raw business names and street addresses into
// canonical comparable forms. All functions are pure and deterministic:
// the same input always produces the same output, and name/address
// normalization is idempotent.
package normalize
