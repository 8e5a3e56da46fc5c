package rules

import (
	"fmt"

	"github.com/poiesic/intentify/core"
)

// Rule contributes score to a target intent when its signal conditions hold.
// An empty Requires list is legal: such a rule fires whenever none of its
// excluded signals are present, which is how catch-all rules are written.
type Rule struct {
	ID       string   `yaml:"id" json:"id"`
	Requires []string `yaml:"requires,omitempty" json:"requires,omitempty"`
	Excludes []string `yaml:"excludes,omitempty" json:"excludes,omitempty"`
	Target   string   `yaml:"target" json:"target"`
	Delta    float64  `yaml:"delta" json:"delta"`
}

// Table is an ordered, immutable rule list. Construct one with New,
// Default, or LoadFile.
type Table struct {
	rules []Rule
}

// New builds a Table and validates it: unique non-empty IDs, positive
// deltas, non-empty targets, and signal names drawn from the canonical set.
func New(list []Rule) (*Table, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyTable)
	}

	known := make(map[string]bool, len(core.SignalNames))
	for _, name := range core.SignalNames {
		known[name] = true
	}

	seen := make(map[string]bool, len(list))
	for _, r := range list {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyRuleID)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidRule, ErrDuplicateRule, r.ID)
		}
		seen[r.ID] = true

		if r.Target == "" {
			return nil, fmt.Errorf("%w: %w: rule %q", ErrInvalidRule, ErrEmptyTarget, r.ID)
		}
		if r.Delta <= 0 {
			return nil, fmt.Errorf("%w: %w: rule %q has delta %v", ErrInvalidRule, ErrBadDelta, r.ID, r.Delta)
		}
		for _, name := range r.Requires {
			if !known[name] {
				return nil, fmt.Errorf("%w: %w: rule %q requires %q", ErrInvalidRule, ErrUnknownSignal, r.ID, name)
			}
		}
		for _, name := range r.Excludes {
			if !known[name] {
				return nil, fmt.Errorf("%w: %w: rule %q excludes %q", ErrInvalidRule, ErrUnknownSignal, r.ID, name)
			}
		}
	}

	rules := make([]Rule, len(list))
	copy(rules, list)
	return &Table{rules: rules}, nil
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rule list in table order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Evaluate runs every rule against the signals. A rule fires iff all of its
// required signals are set and none of its excluded signals are. Fired rule
// IDs come back in table order; deltas are summed per target intent.
func (t *Table) Evaluate(sig core.Signals) ([]string, core.ScoreMap) {
	fired := make([]string, 0, len(t.rules))
	deltas := make(core.ScoreMap)

	for _, r := range t.rules {
		if !matches(r, sig) {
			continue
		}
		fired = append(fired, r.ID)
		deltas[r.Target] += r.Delta
	}

	return fired, deltas
}

func matches(r Rule, sig core.Signals) bool {
	for _, name := range r.Requires {
		if !sig.Has(name) {
			return false
		}
	}
	for _, name := range r.Excludes {
		if sig.Has(name) {
			return false
		}
	}
	return true
}
