package enrich

import (
	"strings"

	"entitymatch/internal/registry"
)

// sentinelValues are literal strings that upstream exports emit in place of
// missing data. They are treated as empty.
var sentinelValues = map[string]struct{}{
	"": {}, "nan": {}, "null": {}, "none": {},
}

func cleanNameField(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if _, sentinel := sentinelValues[strings.ToLower(trimmed)]; sentinel {
		return ""
	}
	return trimmed
}

// AgentName formats the registered agent of an entity as a display name.
// Only person names are reported: a first name without a last name stands
// alone, a last name without a first name is suppressed, and the agent
// organization is never used as a person name.
func AgentName(entity *registry.Entity) string {
	if entity == nil {
		return ""
	}
	first := cleanNameField(entity.AgentFirstName)
	middle := cleanNameField(entity.AgentMiddleName)
	last := cleanNameField(entity.AgentLastName)

	switch {
	case first != "" && last != "":
		if middle != "" {
			return first + " " + middle + " " + last
		}
		return first + " " + last
	case first != "":
		return first
	default:
		return ""
	}
}
