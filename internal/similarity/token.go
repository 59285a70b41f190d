package similarity

import (
	"sort"
	"strings"
)

// TokenSortRatio compares the two strings with their tokens sorted, which
// makes the score order-insensitive ("MAIN ST 100" vs "100 MAIN ST").
func TokenSortRatio(a, b string) int {
	return toScore(charSimilarity(sortedTokens(a), sortedTokens(b)))
}

// TokenSetRatio compares the sorted token intersection against each side's
// remainder, scoring 100 when one token set contains the other.
func TokenSetRatio(a, b string) int {
	return toScore(tokenSetSimilarity(a, b))
}

func tokenSetSimilarity(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range tokensB {
		if _, ok := tokensA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := 0.0
	if base != "" {
		best = maxFloat(charSimilarity(base, combinedA), charSimilarity(base, combinedB))
	}
	return maxFloat(best, charSimilarity(combinedA, combinedB))
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
