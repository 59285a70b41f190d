package similarity

const (
	unbaseScale       = 0.95
	partialScaleNear  = 0.90
	partialScaleFar   = 0.60
	partialLenRatio   = 1.5
	farLenRatio       = 8.0
)

// WRatio is the weighted best-of score used for name matching: it takes the
// strongest of the plain, token-sorted, and token-set comparisons, switching
// to partial (windowed) variants when the strings differ greatly in length.
func WRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	base := charSimilarity(a, b)

	lenA, lenB := float64(len([]rune(a))), float64(len([]rune(b)))
	lenRatio := lenA / lenB
	if lenRatio < 1 {
		lenRatio = 1 / lenRatio
	}

	if lenRatio < partialLenRatio {
		score := maxFloat(base, unbaseScale*float64(TokenSortRatio(a, b))/100)
		score = maxFloat(score, unbaseScale*tokenSetSimilarity(a, b))
		return toScore(score)
	}

	partialScale := partialScaleNear
	if lenRatio > farLenRatio {
		partialScale = partialScaleFar
	}

	score := maxFloat(base, partialScale*partialSimilarity(a, b))
	score = maxFloat(score, unbaseScale*partialScale*partialSimilarity(sortedTokens(a), sortedTokens(b)))
	return toScore(score)
}
