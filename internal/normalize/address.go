package normalize

import (
	"regexp"
	"strings"
)

var (
	hashUnitPattern = regexp.MustCompile(`\s*#\s*\d+\w*`)
	wordUnitPattern = regexp.MustCompile(`\s*\b(UNIT|SUITE|STE|APT|APARTMENT|BLDG|BUILDING|FL|FLOOR|RM|ROOM)\b\s*#?\s*\d*\w*`)
	multiSpace      = regexp.MustCompile(`\s+`)
)

// streetReplacements standardizes street-type and directional words to USPS
// abbreviations. Applied in order on the upper-cased address.
var streetReplacements = []struct {
	pattern *regexp.Regexp
	abbrev  string
}{
	{regexp.MustCompile(`\bSTREET\b`), "ST"},
	{regexp.MustCompile(`\bAVENUE\b`), "AVE"},
	{regexp.MustCompile(`\bBOULEVARD\b`), "BLVD"},
	{regexp.MustCompile(`\bDRIVE\b`), "DR"},
	{regexp.MustCompile(`\bLANE\b`), "LN"},
	{regexp.MustCompile(`\bROAD\b`), "RD"},
	{regexp.MustCompile(`\bCOURT\b`), "CT"},
	{regexp.MustCompile(`\bCIRCLE\b`), "CIR"},
	{regexp.MustCompile(`\bPLACE\b`), "PL"},
	{regexp.MustCompile(`\bPARKWAY\b`), "PKWY"},
	{regexp.MustCompile(`\bHIGHWAY\b`), "HWY"},
	{regexp.MustCompile(`\bNORTH\b`), "N"},
	{regexp.MustCompile(`\bSOUTH\b`), "S"},
	{regexp.MustCompile(`\bEAST\b`), "E"},
	{regexp.MustCompile(`\bWEST\b`), "W"},
}

// StreetAddress normalizes a street address for comparison: upper-case,
// unit/suite/apartment designators removed along with their numbers,
// street types and directions abbreviated, whitespace collapsed. Idempotent.
func StreetAddress(raw string) string {
	addr := strings.ToUpper(strings.TrimSpace(raw))
	if addr == "" {
		return ""
	}

	addr = hashUnitPattern.ReplaceAllString(addr, "")
	addr = wordUnitPattern.ReplaceAllString(addr, "")

	for _, r := range streetReplacements {
		addr = r.pattern.ReplaceAllString(addr, r.abbrev)
	}

	return strings.TrimSpace(multiSpace.ReplaceAllString(addr, " "))
}

var zipPattern = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

// Street extracts the street line (first comma-delimited segment) from a
// full address string, upper-cased.
func Street(address string) string {
	segment, _, _ := strings.Cut(address, ",")
	return strings.ToUpper(strings.TrimSpace(segment))
}

// City extracts the city (second comma-delimited segment) from a full
// address string, upper-cased. Returns "" when the address has no second
// segment.
func City(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(parts[1]))
}

// Zip extracts the first 5-digit ZIP code found anywhere in the address,
// tolerating the plus-four form.
func Zip(address string) string {
	match := zipPattern.FindStringSubmatch(address)
	if match == nil {
		return ""
	}
	return match[1]
}
