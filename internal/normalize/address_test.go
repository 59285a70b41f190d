package normalize

import "testing"

func TestStreetAddressVariantsConverge(t *testing.T) {
	a := StreetAddress("2101 N Ursula St #10")
	b := StreetAddress("2101 North Ursula Street Unit 10")
	if a != b {
		t.Fatalf("variants differ: %q vs %q", a, b)
	}
	if a != "2101 N URSULA ST" {
		t.Fatalf("normalized form = %q", a)
	}
}

func TestStreetAddress(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"100 Main Street", "100 MAIN ST"},
		{"455 Broadway Avenue Suite 200", "455 BROADWAY AVE"},
		{"12 East Colfax Boulevard", "12 E COLFAX BLVD"},
		{"800 Airport Parkway Apt 4B", "800 AIRPORT PKWY"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StreetAddress(tc.in); got != tc.want {
			t.Errorf("StreetAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStreetAddressIdempotent(t *testing.T) {
	inputs := []string{
		"2101 North Ursula Street Unit 10",
		"100 Main Street",
		"455 Broadway Ave",
	}
	for _, in := range inputs {
		once := StreetAddress(in)
		if twice := StreetAddress(once); once != twice {
			t.Errorf("StreetAddress not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestAddressSegments(t *testing.T) {
	addr := "100 Main St, Denver, CO 80202, USA"

	if got := Street(addr); got != "100 MAIN ST" {
		t.Fatalf("Street = %q", got)
	}
	if got := City(addr); got != "DENVER" {
		t.Fatalf("City = %q", got)
	}
	if got := Zip(addr); got != "80202" {
		t.Fatalf("Zip = %q", got)
	}
}

func TestZip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"100 Main St, Denver, CO 80202-1234", "80202"},
		{"Denver CO", ""},
		{"PO Box 123456", ""}, // six digits is not a zip
		{"80301 Arapahoe Rd, Boulder, CO", "80301"},
	}
	for _, tc := range cases {
		if got := Zip(tc.in); got != tc.want {
			t.Errorf("Zip(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCityMissingSegments(t *testing.T) {
	if got := City("100 Main St"); got != "" {
		t.Fatalf("City without second segment = %q", got)
	}
	if got := Street(""); got != "" {
		t.Fatalf("Street of empty = %q", got)
	}
}
