// Package match resolves noisy business listings against the registry
// table. Candidate generation is blocked by city (with a prefix fallback),
// scoring uses fuzzy string ratios, and a fixed strategy chain tries name
// matching first and street-address matching second.
package match
