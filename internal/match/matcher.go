package match

import (
	"log/slog"

	"entitymatch/internal/logging"
	"entitymatch/internal/normalize"
	"entitymatch/internal/registry"
)

// Matcher resolves listings against one registry table generation. It is
// stateless beyond the table and policy, so a single Matcher is safe for
// concurrent use.
type Matcher struct {
	table  *registry.Table
	policy Policy
	logger *slog.Logger
}

// New creates a Matcher over the given table.
func New(table *registry.Table, policy Policy, logger *slog.Logger) *Matcher {
	return &Matcher{
		table:  table,
		policy: policy.normalized(),
		logger: logging.NewComponentLogger(logger, "match"),
	}
}

// query is one listing, normalized once up front so every strategy works
// from the same derived forms.
type query struct {
	NameNormalized string
	NamePrefix     string
	Street         string
	City           string
	Zip            string
}

func newQuery(name, address string) query {
	normalized := normalize.BusinessName(name)
	return query{
		NameNormalized: normalized,
		NamePrefix:     normalize.NamePrefix(normalized, normalize.PrefixLength),
		Street:         normalize.StreetAddress(normalize.Street(address)),
		City:           normalize.City(address),
		Zip:            normalize.Zip(address),
	}
}

type strategyAttempt struct {
	Name Type
	Run  func(query) Result
}

// FindBestMatch resolves a listing name and full address ("street, city,
// state zip") to the best registry entity. Strategies run in order and the
// first one that clears its thresholds wins. A name that normalizes to
// empty only disables the name strategy; the listing can still match on
// its address.
func (m *Matcher) FindBestMatch(name, address string) Result {
	q := newQuery(name, address)

	attempts := []strategyAttempt{
		{Name: TypeName, Run: m.matchByName},
		{Name: TypeAddress, Run: m.matchByAddress},
	}
	for _, attempt := range attempts {
		result := attempt.Run(q)
		if !result.Matched() {
			continue
		}
		m.logger.Debug("listing matched",
			logging.String(logging.FieldStrategy, string(attempt.Name)),
			logging.String("entity", result.Entity.Name),
			logging.Int("score", result.Score),
			logging.Int("name_similarity", result.NameSimilarity))
		return result
	}
	return Result{}
}

// candidates returns the city-blocked candidate rows for a query. City
// blocks larger than the cutoff are narrowed to the query ZIP when that
// subset is non-empty; narrowing never blocks down to zero candidates.
func (m *Matcher) candidates(q query) []int32 {
	block := m.table.CityCandidates(q.City)

	if len(block) > m.policy.CityBlockZipCutoff && q.Zip != "" {
		narrowed := make([]int32, 0, len(block)/4)
		for _, idx := range block {
			if m.table.Entities[idx].Zip == q.Zip {
				narrowed = append(narrowed, idx)
			}
		}
		if len(narrowed) > 0 {
			block = narrowed
		}
	}
	return block
}
