package analyze

import (
	"context"
	"testing"

	"github.com/poiesic/intentify/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatch(t *testing.T) {
	a, err := New(WithPoolSize(4))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("results preserve input order", func(t *testing.T) {
		queries := []string{
			"buy running shoes",
			"what is a monad",
			"coffee shops near me",
		}
		results, err := a.AnalyzeBatch(ctx, queries)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "transactional_purchase", results[0].PrimaryIntent)
		assert.Equal(t, "informational", results[1].PrimaryIntent)
		assert.Equal(t, "local_near_me", results[2].PrimaryIntent)

		for i, q := range queries {
			assert.Equal(t, q, results[i].DebugTrace.OriginalQuery)
		}
	})

	t.Run("matches individual analysis", func(t *testing.T) {
		query := "best apple laptop under 1500"
		single, err := a.Analyze(query)
		require.NoError(t, err)

		results, err := a.AnalyzeBatch(ctx, []string{query})
		require.NoError(t, err)
		require.Len(t, results, 1)

		results[0].DebugTrace.PipelineDurationMS = single.DebugTrace.PipelineDurationMS
		assert.Equal(t, single, results[0])
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := a.AnalyzeBatch(ctx, nil)
		assert.ErrorIs(t, err, core.ErrNoQueries)
	})

	t.Run("invalid query fails the batch up front", func(t *testing.T) {
		_, err := a.AnalyzeBatch(ctx, []string{"valid query", "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrQueryTooShort)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := a.AnalyzeBatch(cancelled, []string{"buy running shoes"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("large batch", func(t *testing.T) {
		queries := make([]string, 100)
		for i := range queries {
			queries[i] = "buy running shoes"
		}
		results, err := a.AnalyzeBatch(ctx, queries)
		require.NoError(t, err)
		require.Len(t, results, 100)
		for _, res := range results {
			assert.Equal(t, "transactional_purchase", res.PrimaryIntent)
		}
	})
}
