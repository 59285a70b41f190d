package registry

import (
	"sort"
	"time"
)

// Table is one load generation of the registry: the filtered, sorted entity
// rows plus the blocking indexes. Built once, immutable thereafter. The row
// order is the default tie-break for equally-plausible match candidates:
// statusPriority ascending, then formation date descending with unknown
// dates last, then normalized name for determinism.
type Table struct {
	Entities []Entity
	LoadedAt time.Time

	byCity   map[string][]int32
	byPrefix map[string][]int32
}

// NewTable derives normalized fields, removes terminal-status entities,
// sorts rows into tie-break order, and builds the blocking indexes.
// Jurisdiction filtering happens upstream in the loader, which still has
// the source's state column in hand.
func NewTable(entities []Entity) *Table {
	kept := make([]Entity, 0, len(entities))
	for _, entity := range entities {
		entity.derive()
		if entity.StatusPriority >= PriorityTerminal {
			continue
		}
		kept = append(kept, entity)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := &kept[i], &kept[j]
		if a.StatusPriority != b.StatusPriority {
			return a.StatusPriority < b.StatusPriority
		}
		if !a.FormationDate.Equal(b.FormationDate) {
			return MoreRecentFormation(a.FormationDate, b.FormationDate)
		}
		return a.NameNormalized < b.NameNormalized
	})

	table := &Table{
		Entities: kept,
		LoadedAt: time.Now(),
		byCity:   make(map[string][]int32),
		byPrefix: make(map[string][]int32),
	}
	for i := range kept {
		idx := int32(i)
		if city := kept[i].City; city != "" {
			table.byCity[city] = append(table.byCity[city], idx)
		}
		if prefix := kept[i].NamePrefix; prefix != "" {
			table.byPrefix[prefix] = append(table.byPrefix[prefix], idx)
		}
	}
	return table
}

// Len returns the number of loaded entities.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Entities)
}

// CityCandidates returns the row indexes blocked by exact city, in table
// (tie-break) order. Callers must not mutate the returned slice.
func (t *Table) CityCandidates(city string) []int32 {
	if t == nil {
		return nil
	}
	return t.byCity[city]
}

// PrefixCandidates returns the row indexes blocked by the 4-character name
// prefix, in table order. Callers must not mutate the returned slice.
func (t *Table) PrefixCandidates(prefix string) []int32 {
	if t == nil {
		return nil
	}
	return t.byPrefix[prefix]
}

// PrefixCount returns the number of distinct prefix blocking keys.
func (t *Table) PrefixCount() int {
	if t == nil {
		return 0
	}
	return len(t.byPrefix)
}
