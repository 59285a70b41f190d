package similarity

import (
	"math"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

const (
	jaroWinklerWeight = 0.7
	levenshteinWeight = 0.3
	jwBoostThreshold  = 0.7
	jwPrefixSize      = 4
)

// charSimilarity returns a 0..1 blended character similarity.
func charSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	jw := smetrics.JaroWinkler(a, b, jwBoostThreshold, jwPrefixSize)

	dist := levenshtein.ComputeDistance(a, b)
	denom := float64(max(len([]rune(a)), len([]rune(b))))
	lev := 1 - float64(dist)/denom

	return jaroWinklerWeight*jw + levenshteinWeight*lev
}

// Ratio scores the plain character similarity of two strings on 0-100.
func Ratio(a, b string) int {
	return toScore(charSimilarity(a, b))
}

// PartialRatio scores the shorter string against the best-aligned
// equal-length window of the longer string.
func PartialRatio(a, b string) int {
	return toScore(partialSimilarity(a, b))
}

func partialSimilarity(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	if len(shorter) == len(longer) {
		return charSimilarity(string(shorter), string(longer))
	}

	best := 0.0
	window := len(shorter)
	for start := 0; start+window <= len(longer); start++ {
		score := charSimilarity(string(shorter), string(longer[start:start+window]))
		if score > best {
			best = score
		}
		if best == 1 {
			break
		}
	}
	return best
}

func toScore(similarity float64) int {
	if similarity <= 0 {
		return 0
	}
	if similarity >= 1 {
		return 100
	}
	return int(math.Round(similarity * 100))
}
