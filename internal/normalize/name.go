package normalize

import (
	"regexp"
	"strings"
)

// leadingArticles are dropped from the front of a business name.
var leadingArticles = map[string]struct{}{
	"THE": {}, "A": {}, "AN": {},
}

// legalSuffixes are stripped repeatedly from the end of a business name.
// Closed set; some registrations stack several ("... HOLDINGS LLC").
var legalSuffixes = map[string]struct{}{
	"LLC": {}, "INC": {}, "INCORPORATED": {}, "CORP": {}, "CORPORATION": {},
	"CO": {}, "COMPANY": {}, "LTD": {}, "LIMITED": {}, "LP": {}, "LLP": {},
	"PC": {}, "PLLC": {}, "PA": {}, "NA": {},
	"PROF": {}, "PROFESSIONAL": {}, "ASSOC": {}, "ASSOCIATES": {}, "ASSOCIATION": {},
	"GROUP": {}, "GRP": {}, "HOLDINGS": {}, "ENTERPRISES": {}, "PARTNERS": {}, "PARTNERSHIP": {},
}

var nonAlnumPattern = regexp.MustCompile(`[^A-Z0-9\s]`)

// BusinessName normalizes a business name for comparison: upper-case,
// & and + become AND, punctuation drops to spaces, leading articles and
// trailing legal-form suffixes are stripped. Idempotent.
func BusinessName(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "&", " AND ")
	s = strings.ReplaceAll(s, "+", " AND ")
	s = nonAlnumPattern.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)

	for len(tokens) > 0 {
		if _, ok := leadingArticles[tokens[0]]; !ok {
			break
		}
		tokens = tokens[1:]
	}

	for len(tokens) > 0 {
		if _, ok := legalSuffixes[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, " ")
}

var nonAlnumTight = regexp.MustCompile(`[^A-Z0-9]`)

// PrefixLength is the blocking-key length used by the registry prefix index.
const PrefixLength = 4

// NamePrefix returns the alphanumeric-only prefix of a normalized name,
// used as the fallback blocking key.
func NamePrefix(normalizedName string, length int) string {
	key := nonAlnumTight.ReplaceAllString(normalizedName, "")
	if len(key) > length {
		key = key[:length]
	}
	return key
}
