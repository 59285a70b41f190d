package listings

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// File is a loaded listings CSV: the original header and rows, plus the
// resolved positions of the two columns matching operates on.
type File struct {
	Header []string
	Rows   [][]string

	nameIdx    int
	addressIdx int
}

// Read parses a listings CSV. The file must carry "Name" and "Address"
// columns (any casing); all other columns ride along untouched.
func Read(r io.Reader) (*File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("listings file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read listings header: %w", err)
	}

	file := &File{Header: header, nameIdx: -1, addressIdx: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "name":
			if file.nameIdx == -1 {
				file.nameIdx = i
			}
		case "address":
			if file.addressIdx == -1 {
				file.addressIdx = i
			}
		}
	}
	if file.nameIdx == -1 {
		return nil, fmt.Errorf("listings file missing required column \"Name\"")
	}
	if file.addressIdx == -1 {
		return nil, fmt.Errorf("listings file missing required column \"Address\"")
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read listings row %d: %w", len(file.Rows)+2, err)
		}
		file.Rows = append(file.Rows, row)
	}
	return file, nil
}

// ReadFile opens and parses a listings CSV from disk.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open listings file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Len returns the number of data rows.
func (f *File) Len() int {
	return len(f.Rows)
}

// Name returns the listing name of row i, or "" when the row is short.
func (f *File) Name(i int) string {
	return f.field(i, f.nameIdx)
}

// Address returns the listing address of row i, or "" when the row is short.
func (f *File) Address(i int) string {
	return f.field(i, f.addressIdx)
}

func (f *File) field(i, idx int) string {
	if i < 0 || i >= len(f.Rows) || idx >= len(f.Rows[i]) {
		return ""
	}
	return f.Rows[i][idx]
}

// Enrichment is the set of columns appended to one output row. Unmatched
// rows carry empty strings across the board.
type Enrichment struct {
	BusinessName    string
	AgentName       string
	EntityStatus    string
	MatchConfidence string
	MatchType       string
	NameSimilarity  string
}

var enrichmentHeader = []string{
	"BusinessName", "AgentName", "EntityStatus",
	"MatchConfidence", "MatchType", "NameSimilarity",
}

// WriteEnriched writes the original rows with the enrichment columns
// appended. enrichments must be the same length as the file's rows.
func WriteEnriched(w io.Writer, f *File, enrichments []Enrichment) error {
	if len(enrichments) != f.Len() {
		return fmt.Errorf("enrichment count %d does not match row count %d", len(enrichments), f.Len())
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(append(append([]string{}, f.Header...), enrichmentHeader...)); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}
	for i, row := range f.Rows {
		e := enrichments[i]
		out := append(append([]string{}, row...),
			e.BusinessName, e.AgentName, e.EntityStatus,
			e.MatchConfidence, e.MatchType, e.NameSimilarity)
		if err := writer.Write(out); err != nil {
			return fmt.Errorf("write output row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// WriteEnrichedFile writes the enriched output to disk via a temp file and
// rename so an interrupted run never leaves a half-written output.
func WriteEnrichedFile(path string, f *File, enrichments []Enrichment) error {
	tempPath := path + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteEnriched(out, f, enrichments); err != nil {
		out.Close()
		os.Remove(tempPath)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("flush output file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
