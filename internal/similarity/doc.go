// Package similarity provides 0-100 fuzzy string scores for entity
// resolution. The character-level primitive blends Jaro-Winkler with a
// length-normalized Levenshtein ratio; token variants tolerate word
// reordering, and WRatio additionally tolerates partial token differences
// between strings of very different lengths.
package similarity
