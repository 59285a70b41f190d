package normalize

import "testing"

func TestBusinessName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Acme Plumbing, LLC.", "ACME PLUMBING"},
		{"The Daily Grind Coffee Co", "DAILY GRIND COFFEE"},
		{"Joe's Diner", "JOES DINER"},
		{"Smith & Sons Roofing Inc", "SMITH AND SONS ROOFING"},
		{"A+ Auto Repair", "AND AUTO REPAIR"},
		{"Rocky Mountain Holdings LLC", "ROCKY MOUNTAIN"},
		{"An Uncommon Name", "UNCOMMON NAME"},
		{"LLC", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := BusinessName(tc.in); got != tc.want {
			t.Errorf("BusinessName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBusinessNameIdempotent(t *testing.T) {
	inputs := []string{
		"Acme Plumbing, LLC.",
		"The Daily Grind Coffee Co",
		"Cerebral Brewing",
		"Station 26 Brewing Co",
		"ABC HOLDINGS",
		"",
	}
	for _, in := range inputs {
		once := BusinessName(in)
		twice := BusinessName(once)
		if once != twice {
			t.Errorf("BusinessName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestBusinessNameStripsStackedSuffixes(t *testing.T) {
	if got := BusinessName("Widget Works Company Inc"); got != "WIDGET WORKS" {
		t.Fatalf("stacked suffixes not stripped: %q", got)
	}
}

func TestNamePrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ACME PLUMBING", "ACME"},
		{"AB C", "ABC"},
		{"AB", "AB"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NamePrefix(tc.in, PrefixLength); got != tc.want {
			t.Errorf("NamePrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSignificantWords(t *testing.T) {
	words := SignificantWords("CEREBRAL BREWING")
	if _, ok := words["CEREBRAL"]; !ok {
		t.Fatal("CEREBRAL should be significant")
	}
	if _, ok := words["BREWING"]; ok {
		t.Fatal("BREWING is a generic industry word")
	}

	// Short and numeric tokens are excluded.
	words = SignificantWords("26 XL ZENITH")
	if len(words) != 1 {
		t.Fatalf("want only ZENITH, got %v", words)
	}
}

func TestHasSufficientWordOverlap(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		// Core false-positive scenario: high fuzzy score, unrelated businesses.
		{"CEREBRAL BREWING", "AURORA DOWNTOWN", false},
		{"JOES DINER", "JOES DINER", true},
		{"STATION BREWING", "STATION26", true},   // containment of substantial words
		{"ZENITH ROOFING", "ZENITHAL GROUP", true}, // shared 5-char root
		{"BREWING HOUSE", "TAP ROOM", false},       // all filler on both sides
		{"", "JOES DINER", false},
	}
	for _, tc := range cases {
		if got := HasSufficientWordOverlap(tc.a, tc.b); got != tc.want {
			t.Errorf("HasSufficientWordOverlap(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
