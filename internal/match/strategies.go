package match

import (
	"entitymatch/internal/normalize"
	"entitymatch/internal/registry"
	"entitymatch/internal/similarity"
)

// matchByName scores the listing name against candidate entity names,
// first over the city block and, when nothing there survives, again over
// the prefix-index block (covers registry rows with a missing or
// mismatched city field).
func (m *Matcher) matchByName(q query) Result {
	// A name reduced to nothing carries no signal.
	if q.NameNormalized == "" {
		return Result{}
	}
	if result := m.scanNames(q, m.candidates(q)); result.Matched() {
		return result
	}
	if q.NamePrefix == "" {
		return Result{}
	}
	return m.scanNames(q, m.table.PrefixCandidates(q.NamePrefix))
}

// scanNames finds the best name match among the given rows. The best score
// must clear the name threshold; every candidate within the bucket
// tolerance of the best (and still at the threshold) is an equally
// plausible hit, and the first of those in table order (status, then
// formation recency) wins. Candidates without sufficient word overlap with
// the listing name are rejected even when the ratio is high, which guards
// against distinct businesses sharing a generic word.
func (m *Matcher) scanNames(q query, indexes []int32) Result {
	if len(indexes) == 0 {
		return Result{}
	}

	scores := make([]int, len(indexes))
	best := 0
	for i, idx := range indexes {
		scores[i] = similarity.WRatio(q.NameNormalized, m.table.Entities[idx].NameNormalized)
		if scores[i] > best {
			best = scores[i]
		}
	}
	if best < m.policy.NameThreshold {
		return Result{}
	}

	floor := best - m.policy.NameBucketTolerance
	if floor < m.policy.NameThreshold {
		floor = m.policy.NameThreshold
	}
	for i, idx := range indexes {
		if scores[i] < floor {
			continue
		}
		entity := &m.table.Entities[idx]
		if !normalize.HasSufficientWordOverlap(q.NameNormalized, entity.NameNormalized) {
			continue
		}
		// Confidence is the bucket's top score: the whole bucket counts as
		// one near-tie, so tie-breaking to a candidate a couple of points
		// under the top does not weaken the reported confidence. The
		// candidate's own ratio is still reported as NameSimilarity.
		return Result{
			Entity:         entity,
			Score:          best,
			Type:           TypeName,
			NameSimilarity: scores[i],
		}
	}
	return Result{}
}

// matchByAddress scores the listing street against candidate entity
// addresses with a token-sort ratio. The order-tolerant but whole-string
// metric matters here: a windowed partial score would happily award a
// listing street that is a bare substring of a longer registry address,
// matching a different tenant at the same building. Address similarity
// alone is still too weak a signal, so every bucket candidate must also
// pass a minimum name similarity when a name is available; among survivors
// the tie-break prefers better status, then higher name similarity, then
// more recent formation.
func (m *Matcher) matchByAddress(q query) Result {
	// Address matching without a city block is too ambiguous.
	if q.Street == "" || q.City == "" {
		return Result{}
	}
	indexes := m.candidates(q)
	if len(indexes) == 0 {
		return Result{}
	}

	scores := make([]int, len(indexes))
	best := 0
	for i, idx := range indexes {
		scores[i] = similarity.TokenSortRatio(q.Street, m.table.Entities[idx].AddressNormalized)
		if scores[i] > best {
			best = scores[i]
		}
	}
	if best < m.policy.AddressThreshold {
		return Result{}
	}

	floor := best - m.policy.AddressBucketTolerance
	if floor < m.policy.AddressThreshold {
		floor = m.policy.AddressThreshold
	}
	var (
		chosen        *registry.Entity
		chosenScore   int
		chosenNameSim int
	)
	for i, idx := range indexes {
		if scores[i] < floor {
			continue
		}
		entity := &m.table.Entities[idx]
		nameSim := 0
		if q.NameNormalized != "" {
			nameSim = similarity.WRatio(q.NameNormalized, entity.NameNormalized)
			if nameSim < m.policy.MinNameSimilarity {
				continue
			}
		}
		if chosen == nil || betterAddressCandidate(entity, nameSim, chosen, chosenNameSim) {
			chosen = entity
			chosenScore = scores[i]
			chosenNameSim = nameSim
		}
	}
	if chosen == nil {
		return Result{}
	}
	return Result{
		Entity:         chosen,
		Score:          chosenScore,
		Type:           TypeAddress,
		NameSimilarity: chosenNameSim,
	}
}

func betterAddressCandidate(a *registry.Entity, aNameSim int, b *registry.Entity, bNameSim int) bool {
	if a.StatusPriority != b.StatusPriority {
		return a.StatusPriority < b.StatusPriority
	}
	if aNameSim != bNameSim {
		return aNameSim > bNameSim
	}
	if !a.FormationDate.Equal(b.FormationDate) {
		return registry.MoreRecentFormation(a.FormationDate, b.FormationDate)
	}
	return false
}
