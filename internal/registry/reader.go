package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// The fixed projection read from the dataset. Any column absent from the
// source is substituted with an empty column rather than failing the load.
const (
	colEntityName    = "entityname"
	colAddress       = "principaladdress1"
	colCity          = "principalcity"
	colState         = "principalstate"
	colZip           = "principalzipcode"
	colAgentFirst    = "agentfirstname"
	colAgentMiddle   = "agentmiddlename"
	colAgentLast     = "agentlastname"
	colAgentOrg      = "agentorganizationname"
)

// First present wins for the status and formation-date columns.
var (
	statusColumns = []string{"entitystatus", "status"}
	dateColumns   = []string{"entityformdate", "entityformationdate"}
)

type columnMap map[string]int

func (c columnMap) value(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (c columnMap) first(row []string, names []string) string {
	for _, name := range names {
		if _, ok := c[name]; ok {
			return c.value(row, name)
		}
	}
	return ""
}

// parseEntities streams the registry CSV, keeping only rows in the target
// jurisdiction. Malformed rows are skipped, never fatal.
func parseEntities(r io.Reader, jurisdiction string) ([]Entity, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read dataset header: %w", err)
	}
	columns := make(columnMap, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[colEntityName]; !ok {
		return nil, 0, fmt.Errorf("dataset missing required column %q", colEntityName)
	}

	var entities []Entity
	total := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows; a single bad line must not abort the load.
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, total, fmt.Errorf("read dataset row: %w", err)
		}
		total++

		state := strings.ToUpper(strings.TrimSpace(columns.value(row, colState)))
		if state != jurisdiction {
			continue
		}

		entities = append(entities, Entity{
			Name:              columns.value(row, colEntityName),
			Address:           columns.value(row, colAddress),
			City:              columns.value(row, colCity),
			Zip:               columns.value(row, colZip),
			AgentFirstName:    strings.TrimSpace(columns.value(row, colAgentFirst)),
			AgentMiddleName:   strings.TrimSpace(columns.value(row, colAgentMiddle)),
			AgentLastName:     strings.TrimSpace(columns.value(row, colAgentLast)),
			AgentOrganization: strings.TrimSpace(columns.value(row, colAgentOrg)),
			Status:            columns.first(row, statusColumns),
			FormationDate:     ParseFormationDate(columns.first(row, dateColumns)),
		})
	}
	return entities, total, nil
}
