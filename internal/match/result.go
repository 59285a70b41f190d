package match

import "entitymatch/internal/registry"

// Type identifies which strategy produced a match.
type Type string

const (
	TypeName    Type = "name"
	TypeAddress Type = "address"
	TypeNone    Type = ""
)

// Result is the outcome of resolving one listing. A nil Entity means no
// registry entity cleared the thresholds.
type Result struct {
	Entity *registry.Entity
	Score  int
	Type   Type

	// NameSimilarity is the fuzzy ratio between the listing name and the
	// matched entity name, regardless of which strategy matched. For name
	// matches it can sit up to the bucket tolerance below Score, which
	// reports the bucket's top score. Zero when the listing name
	// normalized to empty.
	NameSimilarity int
}

// Matched reports whether an entity was found.
func (r Result) Matched() bool {
	return r.Entity != nil
}
