package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// QueryID generates a deterministic identifier from raw query text using
// BLAKE2b hashing. Identical queries always produce identical IDs, which
// keeps repeated analyses of the same query trivially correlatable.
func QueryID(query string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(query))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizedQuery is the output of lexical normalization.
// Tokens keep their insertion order and may contain duplicates.
type NormalizedQuery struct {
	NormalizedText string   `json:"normalized_text"`
	Tokens         []string `json:"tokens"`
}

// Signals is the fixed set of boolean features derived from query tokens.
// One immutable value is produced per analysis call.
type Signals struct {
	Action     bool `json:"action"`
	Comparison bool `json:"comparison"`
	Question   bool `json:"question"`
	Numeric    bool `json:"numeric"`
	Locality   bool `json:"locality"`
	Temporal   bool `json:"temporal"`
	Constraint bool `json:"constraint"`
	Brand      bool `json:"brand"`
}

// SignalNames lists the canonical signal names in field order.
// Rule tables reference signals by these names.
var SignalNames = []string{
	"action", "comparison", "question", "numeric",
	"locality", "temporal", "constraint", "brand",
}

func (s Signals) flags() [8]bool {
	return [8]bool{
		s.Action, s.Comparison, s.Question, s.Numeric,
		s.Locality, s.Temporal, s.Constraint, s.Brand,
	}
}

// Has reports whether the named signal is set. Unknown names report false.
func (s Signals) Has(name string) bool {
	for i, n := range SignalNames {
		if n == name {
			return s.flags()[i]
		}
	}
	return false
}

// Count returns the number of active signals.
func (s Signals) Count() int {
	count := 0
	for _, set := range s.flags() {
		if set {
			count++
		}
	}
	return count
}

// Active returns the names of the active signals in canonical order.
func (s Signals) Active() []string {
	names := make([]string, 0, 8)
	for i, set := range s.flags() {
		if set {
			names = append(names, SignalNames[i])
		}
	}
	return names
}

// ScoreMap maps intent IDs to non-negative scores. It is populated lazily:
// only intents touched by a fired rule or by propagation appear as keys.
// An absent intent is absent, not zero.
type ScoreMap map[string]float64

// Clone returns an independent copy of the map.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ConfidenceLevel is a coarse summary of how trustworthy the primary intent
// assignment is.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// DebugTrace records intermediate pipeline state for a single analysis.
type DebugTrace struct {
	OriginalQuery        string             `json:"original_query"`
	NormalizedQuery      string             `json:"normalized_query"`
	SignalsDetected      []string           `json:"signals_detected"`
	RulesFired           []string           `json:"rules_fired"`
	IntentScoreBreakdown map[string]float64 `json:"intent_score_breakdown"`
	PipelineDurationMS   float64            `json:"pipeline_duration_ms"`
}

// AnalysisResult is the externally visible output of one analysis call.
// Everything except the trace duration is deterministic for a given query
// and configuration.
type AnalysisResult struct {
	QueryID            string             `json:"query_id"`
	PrimaryIntent      string             `json:"primary_intent"`
	IntentDistribution map[string]float64 `json:"intent_distribution"`
	SecondaryIntents   []string           `json:"secondary_intents"`
	ExpandedQueries    []string           `json:"expanded_queries"`
	ConfidenceLevel    ConfidenceLevel    `json:"confidence_level"`
	DebugTrace         DebugTrace         `json:"debug_trace"`
}
