package listings

import (
	"strings"
	"testing"
)

func TestReadLocatesColumnsCaseInsensitively(t *testing.T) {
	file, err := Read(strings.NewReader("id,NAME,Phone,address\n1,Joe's Diner,555-0100,\"123 Main St, Denver, CO 80202\"\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if file.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", file.Len())
	}
	if got := file.Name(0); got != "Joe's Diner" {
		t.Errorf("Name(0) = %q", got)
	}
	if got := file.Address(0); got != "123 Main St, Denver, CO 80202" {
		t.Errorf("Address(0) = %q", got)
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	if _, err := Read(strings.NewReader("id,Name\n1,Joe\n")); err == nil {
		t.Error("Read should fail without an Address column")
	}
	if _, err := Read(strings.NewReader("id,Address\n1,somewhere\n")); err == nil {
		t.Error("Read should fail without a Name column")
	}
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("Read should fail on an empty file")
	}
}

func TestShortRowsReadAsEmpty(t *testing.T) {
	file, err := Read(strings.NewReader("Name,Address,Extra\nJoe's Diner\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := file.Address(0); got != "" {
		t.Errorf("Address(0) = %q, want empty for a short row", got)
	}
}

func TestWriteEnrichedAppendsColumns(t *testing.T) {
	file, err := Read(strings.NewReader("Name,Address\nJoe's Diner,\"123 Main St, Denver, CO\"\nGhost Listing,\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	enrichments := []Enrichment{
		{
			BusinessName:    "Joe's Diner LLC",
			AgentName:       "Jane Smith",
			EntityStatus:    "Good Standing",
			MatchConfidence: "97",
			MatchType:       "name",
			NameSimilarity:  "97",
		},
		{},
	}

	var out strings.Builder
	if err := WriteEnriched(&out, file, enrichments); err != nil {
		t.Fatalf("WriteEnriched: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3", len(lines))
	}
	if lines[0] != "Name,Address,BusinessName,AgentName,EntityStatus,MatchConfidence,MatchType,NameSimilarity" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Joe's Diner LLC,Jane Smith,Good Standing,97,name,97") {
		t.Errorf("matched row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "Ghost Listing,,,,,,,") {
		t.Errorf("unmatched row = %q", lines[2])
	}
}

func TestWriteEnrichedLengthMismatch(t *testing.T) {
	file, err := Read(strings.NewReader("Name,Address\nJoe,somewhere\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var out strings.Builder
	if err := WriteEnriched(&out, file, nil); err == nil {
		t.Error("WriteEnriched should fail on a length mismatch")
	}
}
