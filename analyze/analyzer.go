// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package analyze

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/poiesic/intentify/core"
	"github.com/poiesic/intentify/ontology"
	"github.com/poiesic/intentify/rules"
)

// Analyzer runs the classification pipeline. It holds only immutable
// configuration after construction, so a single Analyzer serves concurrent
// callers without coordination.
type Analyzer struct {
	tree     *ontology.Tree
	table    *rules.Table
	lexicon  *Lexicon
	scorer   scorer
	expander expander
	logger   *slog.Logger
	poolSize int
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithOntology replaces the builtin taxonomy.
func WithOntology(tree *ontology.Tree) Option {
	return func(a *Analyzer) error {
		if tree == nil {
			return ErrOntologyRequired
		}
		a.tree = tree
		return nil
	}
}

// WithRules replaces the builtin rule table.
func WithRules(table *rules.Table) Option {
	return func(a *Analyzer) error {
		if table == nil {
			return ErrRulesRequired
		}
		a.table = table
		return nil
	}
}

// WithLexicon replaces the builtin keyword tables.
func WithLexicon(lex *Lexicon) Option {
	return func(a *Analyzer) error {
		if lex == nil {
			return ErrLexiconRequired
		}
		a.lexicon = lex
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithDamping sets the propagation damping factor.
// Default is 0.4.
func WithDamping(f float64) Option {
	return func(a *Analyzer) error {
		if f <= 0 || f >= 1 {
			return fmt.Errorf("%w: got %v", ErrBadDamping, f)
		}
		a.scorer.damping = f
		return nil
	}
}

// WithFallbackWeight sets the weight applied to intents the ontology does
// not know. Default is 0.1.
func WithFallbackWeight(f float64) Option {
	return func(a *Analyzer) error {
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: got %v", ErrBadFallbackWeight, f)
		}
		a.scorer.fallbackWeight = f
		return nil
	}
}

// WithDefaultIntent sets the intent reported when no rule fires.
// Default is "informational".
func WithDefaultIntent(id string) Option {
	return func(a *Analyzer) error {
		if id == "" {
			return ErrEmptyDefaultIntent
		}
		a.scorer.defaultIntent = id
		return nil
	}
}

// WithPoolSize sets the worker pool size for batch analysis.
// Default is runtime.NumCPU().
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}
		a.poolSize = size
		return nil
	}
}

// New creates an Analyzer. Without options it uses the builtin taxonomy,
// rule table, and lexicon with the standard tuning.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		tree:    ontology.Default(),
		table:   rules.Default(),
		lexicon: DefaultLexicon(),
		scorer: scorer{
			damping:        0.4,
			fallbackWeight: 0.1,
			defaultIntent:  "informational",
		},
		logger:   slog.Default(),
		poolSize: runtime.NumCPU(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	a.scorer.tree = a.tree
	a.expander = expander{tree: a.tree, synonyms: a.lexicon.Synonyms}

	return a, nil
}

// Analyze classifies a single query. The result is deterministic for a
// given query and configuration except for the trace duration. Invalid
// queries fail with core.ErrInvalidQuery before the pipeline runs; any
// unexpected stage failure is wrapped as core.ErrPipeline here, the single
// conversion point, instead of escaping raw.
func (a *Analyzer) Analyze(query string) (result *core.AnalysisResult, err error) {
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis pipeline panicked", "query_id", core.QueryID(query), "cause", r)
			result = nil
			err = fmt.Errorf("%w: %v", core.ErrPipeline, r)
		}
	}()

	start := time.Now()

	normalized := Normalize(query)
	signals := a.lexicon.Extract(normalized.Tokens)
	fired, rawDeltas := a.table.Evaluate(signals)
	sel := a.scorer.Score(rawDeltas)
	expanded := a.expander.Expand(normalized.NormalizedText, sel.Primary, normalized.Tokens)

	primaryScore := sel.Distribution[sel.Primary]
	gap := primaryScore
	if len(sel.Secondary) > 0 {
		gap = primaryScore - sel.Distribution[sel.Secondary[0]]
	}
	confidence := EstimateConfidence(primaryScore, gap, signals.Count())

	elapsed := time.Since(start)

	a.logger.Debug("query analyzed",
		"query_id", core.QueryID(query),
		"primary_intent", sel.Primary,
		"confidence", confidence,
		"rules_fired", len(fired),
		"duration", elapsed,
	)

	return &core.AnalysisResult{
		QueryID:            core.QueryID(query),
		PrimaryIntent:      sel.Primary,
		IntentDistribution: sel.Distribution,
		SecondaryIntents:   sel.Secondary,
		ExpandedQueries:    expanded,
		ConfidenceLevel:    confidence,
		DebugTrace: core.DebugTrace{
			OriginalQuery:        query,
			NormalizedQuery:      normalized.NormalizedText,
			SignalsDetected:      signals.Active(),
			RulesFired:           fired,
			IntentScoreBreakdown: sel.Breakdown,
			PipelineDurationMS:   float64(elapsed) / float64(time.Millisecond),
		},
	}, nil
}
