package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/intentify/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	lex := DefaultLexicon()

	t.Run("action keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"buy", "laptop"})
		assert.True(t, sig.Action)
		assert.False(t, sig.Question)
	})

	t.Run("comparison keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"best", "laptop"})
		assert.True(t, sig.Comparison)
	})

	t.Run("question keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"what", "is", "go"})
		assert.True(t, sig.Question)
	})

	t.Run("numeric from digits", func(t *testing.T) {
		sig := lex.Extract([]string{"laptop", "1000"})
		assert.True(t, sig.Numeric)
	})

	t.Run("numeric from digit inside token", func(t *testing.T) {
		sig := lex.Extract([]string{"iphone15"})
		assert.True(t, sig.Numeric)
	})

	t.Run("numeric from price vocabulary", func(t *testing.T) {
		sig := lex.Extract([]string{"cheap", "laptop"})
		assert.True(t, sig.Numeric)
	})

	t.Run("locality keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"pizza", "near", "me"})
		assert.True(t, sig.Locality)
	})

	t.Run("temporal keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"latest", "phone"})
		assert.True(t, sig.Temporal)
		// "latest" is also not a numeric or constraint keyword.
		assert.False(t, sig.Constraint)
	})

	t.Run("constraint keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"laptop", "under", "budget"})
		assert.True(t, sig.Constraint)
		assert.True(t, sig.Numeric, "budget is price vocabulary")
	})

	t.Run("brand keyword", func(t *testing.T) {
		sig := lex.Extract([]string{"apple", "store"})
		assert.True(t, sig.Brand)
	})

	t.Run("no signals for neutral tokens", func(t *testing.T) {
		sig := lex.Extract([]string{"zebra", "garden", "fence"})
		assert.Equal(t, core.Signals{}, sig)
		assert.Equal(t, 0, sig.Count())
	})

	t.Run("all tests run independently", func(t *testing.T) {
		sig := lex.Extract([]string{"buy", "best", "apple", "near", "now", "under", "what", "500"})
		assert.Equal(t, 8, sig.Count())
	})

	t.Run("deterministic for identical tokens", func(t *testing.T) {
		tokens := []string{"buy", "google", "pixel", "9"}
		assert.Equal(t, lex.Extract(tokens), lex.Extract(tokens))
	})

	t.Run("membership is exact not substring", func(t *testing.T) {
		sig := lex.Extract([]string{"buyer"})
		assert.False(t, sig.Action)
	})
}

func TestLoadLexicon(t *testing.T) {
	t.Run("overrides stated tables only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		content := `
brands: [acme, globex]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		lex, err := LoadLexicon(path)
		require.NoError(t, err)

		sig := lex.Extract([]string{"acme"})
		assert.True(t, sig.Brand)

		sig = lex.Extract([]string{"google"})
		assert.False(t, sig.Brand, "default brand list replaced")

		sig = lex.Extract([]string{"buy"})
		assert.True(t, sig.Action, "unstated tables keep defaults")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLexicon(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{nope"), 0o644))
		_, err := LoadLexicon(path)
		assert.Error(t, err)
	})
}
