package analyze

import (
	"log/slog"
	"testing"

	"github.com/poiesic/intentify/core"
	"github.com/poiesic/intentify/ontology"
	"github.com/poiesic/intentify/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a, err := New()
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("with custom logger", func(t *testing.T) {
		a, err := New(WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		a, err := New(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("nil ontology", func(t *testing.T) {
		_, err := New(WithOntology(nil))
		assert.Equal(t, ErrOntologyRequired, err)
	})

	t.Run("nil rules", func(t *testing.T) {
		_, err := New(WithRules(nil))
		assert.Equal(t, ErrRulesRequired, err)
	})

	t.Run("nil lexicon", func(t *testing.T) {
		_, err := New(WithLexicon(nil))
		assert.Equal(t, ErrLexiconRequired, err)
	})

	t.Run("bad damping", func(t *testing.T) {
		_, err := New(WithDamping(0))
		assert.ErrorIs(t, err, ErrBadDamping)

		_, err = New(WithDamping(1))
		assert.ErrorIs(t, err, ErrBadDamping)
	})

	t.Run("bad fallback weight", func(t *testing.T) {
		_, err := New(WithFallbackWeight(-0.1))
		assert.ErrorIs(t, err, ErrBadFallbackWeight)
	})

	t.Run("empty default intent", func(t *testing.T) {
		_, err := New(WithDefaultIntent(""))
		assert.Equal(t, ErrEmptyDefaultIntent, err)
	})
}

func TestAnalyzeValidation(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	t.Run("empty query", func(t *testing.T) {
		_, err := a.Analyze("   ")
		assert.ErrorIs(t, err, core.ErrInvalidQuery)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := a.Analyze("ab")
		assert.ErrorIs(t, err, core.ErrQueryTooShort)
	})
}

func TestAnalyzeReferenceScenario(t *testing.T) {
	// One action keyword and nothing else: the purchase rule fires with
	// delta 0.6 onto a weight-1.0 leaf under a weight-0.5 root.
	tree, err := ontology.New([]ontology.Node{
		{ID: "transactional", DefaultWeight: 0.5},
		{ID: "transactional_purchase", ParentID: "transactional", DefaultWeight: 1.0},
	})
	require.NoError(t, err)

	table, err := rules.New([]rules.Rule{
		{ID: "r1", Requires: []string{"action"}, Target: "transactional_purchase", Delta: 0.6},
	})
	require.NoError(t, err)

	a, err := New(WithOntology(tree), WithRules(table), WithDefaultIntent("transactional"))
	require.NoError(t, err)

	res, err := a.Analyze("purchase widget")
	require.NoError(t, err)

	assert.Equal(t, "transactional_purchase", res.PrimaryIntent)
	assert.Equal(t, map[string]float64{
		"transactional_purchase": 0.7143,
		"transactional":          0.2857,
	}, res.IntentDistribution)
	assert.Equal(t, []string{"transactional"}, res.SecondaryIntents)
	assert.Equal(t, core.ConfidenceHigh, res.ConfidenceLevel)

	assert.Equal(t, []string{"action"}, res.DebugTrace.SignalsDetected)
	assert.Equal(t, []string{"r1"}, res.DebugTrace.RulesFired)
	assert.InDelta(t, 1.2, res.DebugTrace.IntentScoreBreakdown["transactional_purchase"], 1e-12)
	assert.InDelta(t, 0.48, res.DebugTrace.IntentScoreBreakdown["transactional"], 1e-12)
}

func TestAnalyzeDefaults(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	t.Run("buy query is transactional", func(t *testing.T) {
		res, err := a.Analyze("buy running shoes")
		require.NoError(t, err)
		assert.Equal(t, "transactional_purchase", res.PrimaryIntent)
		assert.Contains(t, res.DebugTrace.RulesFired, "transactional_purchase_explicit")
	})

	t.Run("question query is informational", func(t *testing.T) {
		res, err := a.Analyze("what is a monad")
		require.NoError(t, err)
		assert.Equal(t, "informational", res.PrimaryIntent)
	})

	t.Run("locality query is local", func(t *testing.T) {
		res, err := a.Analyze("coffee shops near me")
		require.NoError(t, err)
		assert.Equal(t, "local_near_me", res.PrimaryIntent)
	})

	t.Run("degenerate fallback", func(t *testing.T) {
		res, err := a.Analyze("zebra garden fence")
		require.NoError(t, err)
		assert.Equal(t, "informational", res.PrimaryIntent)
		assert.Equal(t, map[string]float64{"informational": 1.0}, res.IntentDistribution)
		assert.Empty(t, res.SecondaryIntents)
		assert.Empty(t, res.DebugTrace.RulesFired)
	})

	t.Run("trace carries query forms", func(t *testing.T) {
		res, err := a.Analyze("Buy iPhone 15!")
		require.NoError(t, err)
		assert.Equal(t, "Buy iPhone 15!", res.DebugTrace.OriginalQuery)
		assert.Equal(t, "buy iphone 15", res.DebugTrace.NormalizedQuery)
		assert.GreaterOrEqual(t, res.DebugTrace.PipelineDurationMS, 0.0)
	})

	t.Run("query id is stable", func(t *testing.T) {
		res, err := a.Analyze("best laptop 2025")
		require.NoError(t, err)
		assert.Equal(t, core.QueryID("best laptop 2025"), res.QueryID)
	})
}

func TestAnalyzeWrapsStagePanics(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	// Corrupt a stage dependency so scoring dereferences a nil tree; the
	// orchestrator must recover and surface a typed pipeline error rather
	// than letting the panic escape.
	a.scorer.tree = nil

	res, err := a.Analyze("buy running shoes")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrPipeline)
}

func TestAnalyzeDeterminism(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	first, err := a.Analyze("best apple laptop under 1500")
	require.NoError(t, err)
	second, err := a.Analyze("best apple laptop under 1500")
	require.NoError(t, err)

	// Identical except wall-clock duration.
	second.DebugTrace.PipelineDurationMS = first.DebugTrace.PipelineDurationMS
	assert.Equal(t, first, second)
}

func TestAnalyzeDistributionSum(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	queries := []string{
		"buy running shoes",
		"best apple laptop under 1500",
		"what is dependency injection",
		"plumber near me open now",
		"google pixel 9 review vs iphone",
	}
	for _, q := range queries {
		res, err := a.Analyze(q)
		require.NoError(t, err)

		sum := 0.0
		for _, v := range res.IntentDistribution {
			sum += v
		}
		assert.GreaterOrEqual(t, sum, 0.99, q)
		assert.LessOrEqual(t, sum, 1.0+1e-9, q)

		for _, id := range res.SecondaryIntents {
			assert.NotEqual(t, res.PrimaryIntent, id, q)
			assert.GreaterOrEqual(t, res.IntentDistribution[id], 0.15, q)
		}
		assert.LessOrEqual(t, len(res.ExpandedQueries), 5, q)
	}
}
