package normalize

import "strings"

// fillerWords are tokens that do not help identify a business uniquely:
// connectives, generic business terms, directional/locational words, common
// regional names, and industry words that appear across unrelated companies.
// Closed set.
var fillerWords = map[string]struct{}{
	// connectives and articles
	"AND": {}, "OF": {}, "THE": {}, "IN": {}, "AT": {}, "ON": {}, "FOR": {},
	"TO": {}, "BY": {}, "WITH": {}, "A": {}, "AN": {},
	// generic business terms
	"SERVICES": {}, "SERVICE": {}, "SOLUTIONS": {}, "CONSULTING": {}, "MANAGEMENT": {},
	"GROUP": {}, "HOLDINGS": {}, "ENTERPRISES": {}, "PARTNERS": {}, "ASSOCIATES": {}, "ASSOCIATION": {},
	"COMPANY": {}, "COMPANIES": {}, "CORPORATION": {}, "CORP": {}, "BUSINESS": {}, "BUSINESSES": {},
	"INTERNATIONAL": {}, "GLOBAL": {}, "NATIONAL": {}, "AMERICAN": {}, "USA": {}, "US": {},
	"LIMITED": {}, "LTD": {}, "UNLIMITED": {},
	// directional and locational
	"NORTH": {}, "SOUTH": {}, "EAST": {}, "WEST": {}, "CENTRAL": {}, "NORTHERN": {}, "SOUTHERN": {},
	"EASTERN": {}, "WESTERN": {}, "DOWNTOWN": {}, "UPTOWN": {}, "MIDTOWN": {},
	// size, age, ordinals
	"NEW": {}, "OLD": {}, "FIRST": {}, "SECOND": {}, "THIRD": {}, "FOURTH": {}, "FIFTH": {},
	// common regional and geographic words
	"COLORADO": {}, "DENVER": {}, "AURORA": {}, "BOULDER": {}, "SPRINGS": {},
	"MOUNTAIN": {}, "MOUNTAINS": {}, "VALLEY": {}, "CREEK": {}, "RIVER": {}, "LAKE": {}, "PARK": {},
	"WILD": {}, "GOLDEN": {}, "SILVER": {}, "BLUE": {}, "GREEN": {}, "RED": {}, "BLACK": {}, "WHITE": {},
	"BEST": {}, "GREAT": {}, "PREMIER": {}, "ELITE": {}, "PRO": {}, "PREMIUM": {}, "QUALITY": {},
	"MEETING": {}, "MEETINGS": {}, "FRIENDS": {}, "FRIEND": {},
	// industry terms too generic to disambiguate
	"RESTAURANT": {}, "RESTAURANTS": {}, "BAR": {}, "GRILL": {}, "CAFE": {}, "KITCHEN": {},
	"BREWING": {}, "BREWERY": {}, "BREWHOUSE": {}, "BREW": {}, "BEER": {}, "BEERS": {}, "ALE": {},
	"TAP": {}, "TAPROOM": {}, "ROOM": {}, "HOUSE": {}, "PUB": {}, "TAVERN": {}, "LOUNGE": {},
	"WELLNESS": {}, "HEALTH": {}, "FITNESS": {}, "SPA": {}, "SALON": {},
}

// SignificantWords returns the tokens of a normalized business name that
// carry identifying signal: filler words, tokens shorter than 3 characters,
// and purely numeric tokens are excluded.
func SignificantWords(normalizedName string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, token := range strings.Fields(normalizedName) {
		if len(token) < 3 || isDigits(token) {
			continue
		}
		if _, filler := fillerWords[token]; filler {
			continue
		}
		words[token] = struct{}{}
	}
	return words
}

// HasSufficientWordOverlap reports whether two normalized business names
// share enough identifying vocabulary to be plausibly the same business.
// This rejects high-fuzzy-score but semantically unrelated pairs. Names
// whose significant-word set is empty never overlap (conservative: no
// blind matches on names reduced entirely to filler words).
func HasSufficientWordOverlap(nameA, nameB string) bool {
	wordsA := SignificantWords(nameA)
	wordsB := SignificantWords(nameB)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			return true
		}
	}

	// Partial matches like STATION / STATION26: both words must be
	// substantial (>= 5 chars) before containment or a shared 5-char
	// root counts.
	for a := range wordsA {
		if len(a) < 5 {
			continue
		}
		for b := range wordsB {
			if len(b) < 5 {
				continue
			}
			if strings.Contains(a, b) || strings.Contains(b, a) {
				return true
			}
			if a[:5] == b[:5] {
				return true
			}
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
