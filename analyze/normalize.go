package analyze

import (
	"strings"
	"unicode"

	"github.com/poiesic/intentify/core"
)

// Normalize lower-cases the query, replaces every rune that is not a letter
// or digit with a space, collapses whitespace runs, trims, and splits into
// tokens. It is a pure function and tolerates any input; a query that is
// blank after normalization yields a single empty token, so callers must
// reject blank queries before this stage.
func Normalize(query string) core.NormalizedQuery {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range strings.ToLower(query) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	text := strings.Join(strings.Fields(b.String()), " ")

	return core.NormalizedQuery{
		NormalizedText: text,
		Tokens:         strings.Split(text, " "),
	}
}
