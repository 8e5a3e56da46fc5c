package analyze

import (
	"math"
	"sort"

	"github.com/poiesic/intentify/core"
	"github.com/poiesic/intentify/ontology"
)

const (
	// dropThreshold filters noise entries out of the visible distribution.
	// Entries at or below it are also ineligible for primary/secondary.
	dropThreshold = 0.01
	// secondaryThreshold is the minimum share an intent needs to be
	// reported as a secondary intent.
	secondaryThreshold = 0.15
	// propagationEpsilon stops propagation once per-pass contributions
	// become negligible.
	propagationEpsilon = 1e-9
	// maxPropagationPasses bounds propagation against a misconfigured
	// cyclic ontology. A well-formed tree converges within its depth.
	maxPropagationPasses = 32
)

// scorer turns raw rule deltas into a weighted, tree-propagated, normalized
// distribution and selects the primary and secondary intents.
type scorer struct {
	tree           *ontology.Tree
	damping        float64
	fallbackWeight float64
	defaultIntent  string
}

// selection is the outcome of scoring one analysis.
type selection struct {
	Primary      string
	Distribution map[string]float64
	Secondary    []string
	Breakdown    core.ScoreMap // post-propagation raw scores, for the trace
}

// Score runs weighting, propagation, normalization, and selection over the
// raw deltas produced by rule evaluation.
func (s *scorer) Score(raw core.ScoreMap) selection {
	working := s.weigh(raw)
	s.propagate(working)
	return s.finalize(working)
}

// weigh scales each raw delta by the intent's ontology weight:
// impact = delta * (1 + weight). Intents unknown to the ontology use the
// fallback weight, so rules may target ids outside the formal taxonomy.
func (s *scorer) weigh(raw core.ScoreMap) core.ScoreMap {
	working := make(core.ScoreMap, len(raw))
	for id, delta := range raw {
		weight, ok := s.tree.Weight(id)
		if !ok {
			weight = s.fallbackWeight
		}
		working[id] = delta * (1 + weight)
	}
	return working
}

// propagate pushes scores up the tree: each pass adds damping * (the
// contributions that arrived in the previous pass) to the parents, so a
// score climbs one level per pass with geometric decay. Scores only ever
// increase; passes stop once contributions drop below epsilon or the
// defensive cap is hit.
func (s *scorer) propagate(working core.ScoreMap) {
	pending := working.Clone()
	for pass := 0; pass < maxPropagationPasses; pass++ {
		next := make(core.ScoreMap)
		for id, score := range pending {
			parent, ok := s.tree.Parent(id)
			if !ok {
				continue
			}
			contribution := score * s.damping
			if contribution <= propagationEpsilon {
				continue
			}
			working[parent] += contribution
			next[parent] += contribution
		}
		if len(next) == 0 {
			return
		}
		pending = next
	}
}

// finalize normalizes the working scores to a distribution and picks the
// primary and secondary intents. A zero total falls back to the configured
// default intent with full probability.
//
// Shares are computed in integer ten-thousandths. Rounding each entry
// independently can push the visible sum past 1.0, so any positive
// excess is taken out of the smallest kept entry, keeping the sum in
// [0.99, 1.0] without disturbing the larger shares.
func (s *scorer) finalize(working core.ScoreMap) selection {
	total := 0.0
	for _, v := range working {
		total += v
	}
	if total == 0 {
		return selection{
			Primary:      s.defaultIntent,
			Distribution: map[string]float64{s.defaultIntent: 1.0},
			Secondary:    []string{},
			Breakdown:    core.ScoreMap{},
		}
	}

	type entry struct {
		id    string
		units int // share in ten-thousandths
	}
	eligible := make([]entry, 0, len(working))
	for id, v := range working {
		units := int(math.Round(v / total * 10000))
		if float64(units)/10000 <= dropThreshold {
			continue
		}
		eligible = append(eligible, entry{id: id, units: units})
	}
	if len(eligible) == 0 {
		// Everything rounded away below the noise filter; treat as the
		// degenerate case rather than inventing a primary.
		return selection{
			Primary:      s.defaultIntent,
			Distribution: map[string]float64{s.defaultIntent: 1.0},
			Secondary:    []string{},
			Breakdown:    working.Clone(),
		}
	}

	// Descending score, ascending id on ties.
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].units != eligible[j].units {
			return eligible[i].units > eligible[j].units
		}
		return eligible[i].id < eligible[j].id
	})

	sum := 0
	for _, e := range eligible {
		sum += e.units
	}
	if sum > 10000 {
		eligible[len(eligible)-1].units -= sum - 10000
	}

	distribution := make(map[string]float64, len(eligible))
	for _, e := range eligible {
		distribution[e.id] = float64(e.units) / 10000
	}

	primary := eligible[0].id
	secondary := make([]string, 0, len(eligible)-1)
	for _, e := range eligible[1:] {
		if float64(e.units)/10000 >= secondaryThreshold {
			secondary = append(secondary, e.id)
		}
	}

	return selection{
		Primary:      primary,
		Distribution: distribution,
		Secondary:    secondary,
		Breakdown:    working.Clone(),
	}
}
