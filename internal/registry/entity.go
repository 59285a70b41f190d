package registry

import (
	"strings"
	"time"

	"entitymatch/internal/normalize"
)

// Status priority buckets. Lower sorts first; terminal entities are removed
// from the table entirely.
const (
	PriorityGoodStanding = 1
	PriorityExists       = 2
	PriorityDelinquent   = 3
	PriorityOther        = 50
	PriorityTerminal     = 99
)

var terminalKeywords = []string{"DISSOLVED", "WITHDRAWN", "REVOKED", "NONCOMPLIANT"}

// ClassifyStatus maps raw registry status text onto a priority bucket.
func ClassifyStatus(status string) int {
	upper := strings.ToUpper(status)
	switch {
	case strings.Contains(upper, "GOOD STANDING"):
		return PriorityGoodStanding
	case strings.Contains(upper, "EXISTS"):
		return PriorityExists
	case strings.Contains(upper, "DELINQUENT"):
		return PriorityDelinquent
	}
	for _, keyword := range terminalKeywords {
		if strings.Contains(upper, keyword) {
			return PriorityTerminal
		}
	}
	return PriorityOther
}

// Entity is one row of the registry dataset. Raw fields come from the CSV;
// optional columns absent from the source are loaded as empty strings.
// Derived fields are populated once by NewTable and never change.
type Entity struct {
	Name    string
	Address string
	City    string
	Zip     string

	AgentFirstName    string
	AgentMiddleName   string
	AgentLastName     string
	AgentOrganization string

	Status        string
	FormationDate time.Time // zero = unknown, sorts last

	// Derived.
	NameNormalized    string
	NamePrefix        string
	AddressNormalized string
	StatusPriority    int
}

func (e *Entity) derive() {
	e.NameNormalized = normalize.BusinessName(e.Name)
	e.NamePrefix = normalize.NamePrefix(e.NameNormalized, normalize.PrefixLength)
	e.AddressNormalized = normalize.StreetAddress(e.Address)
	e.City = strings.ToUpper(strings.TrimSpace(e.City))
	e.Zip = strings.TrimSpace(e.Zip)
	if len(e.Zip) > 5 {
		e.Zip = e.Zip[:5]
	}
	e.Status = strings.TrimSpace(e.Status)
	e.StatusPriority = ClassifyStatus(e.Status)
}

// MoreRecentFormation reports whether formation date a should sort ahead of
// b under the "most recent first, unknown last" rule.
func MoreRecentFormation(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.After(b)
}

var formationLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseFormationDate parses the registry's formation-date text. Unparseable
// values yield the zero time ("unknown").
func ParseFormationDate(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range formationLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
