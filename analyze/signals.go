package analyze

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/poiesic/intentify/core"
	"gopkg.in/yaml.v3"
)

// Lexicon holds the keyword vocabulary that drives signal extraction and
// synonym expansion. It is plain data: deployments can override any table
// via a YAML file without touching the algorithm.
type Lexicon struct {
	Action     []string            `yaml:"action"`
	Comparison []string            `yaml:"comparison"`
	Question   []string            `yaml:"question"`
	Price      []string            `yaml:"price"`
	Locality   []string            `yaml:"locality"`
	Temporal   []string            `yaml:"temporal"`
	Constraint []string            `yaml:"constraint"`
	Brands     []string            `yaml:"brands"`
	Synonyms   map[string][]string `yaml:"synonyms"`
}

// DefaultLexicon returns the builtin keyword tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Action: []string{
			"purchase", "buy", "order", "learn", "know", "access", "login",
			"sign", "get", "find", "watch", "download", "install",
		},
		Comparison: []string{
			"ranking", "comparison", "vs", "difference", "better", "best",
			"top", "review", "alternatives",
		},
		Question: []string{
			"what", "how", "why", "when", "where", "who", "which", "can",
			"does", "is",
		},
		Price: []string{
			"price", "cost", "budget", "cheap", "expensive", "usd",
		},
		Locality: []string{
			"near", "nearby", "location", "address", "map", "directions",
			"city", "town", "open", "hours",
		},
		Temporal: []string{
			"latest", "new", "recent", "2024", "2025", "2026", "today",
			"now", "upcoming",
		},
		Constraint: []string{
			"under", "below", "less", "than", "without", "limit",
		},
		Brands: []string{
			"google", "apple", "microsoft", "nike", "amazon", "facebook",
			"twitter", "instagram",
		},
		Synonyms: map[string][]string{
			"laptop": {"notebook", "computer"},
			"phone":  {"smartphone", "mobile"},
			"coding": {"programming", "development"},
			"buy":    {"purchase", "order"},
			"best":   {"top", "rated"},
		},
	}
}

// LoadLexicon reads keyword tables from a YAML file. Tables absent from the
// file fall back to the builtin defaults, so a file can override a single
// list without restating the rest.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	applyLexiconDefaults(&lex)
	return &lex, nil
}

func applyLexiconDefaults(lex *Lexicon) {
	def := DefaultLexicon()
	if len(lex.Action) == 0 {
		lex.Action = def.Action
	}
	if len(lex.Comparison) == 0 {
		lex.Comparison = def.Comparison
	}
	if len(lex.Question) == 0 {
		lex.Question = def.Question
	}
	if len(lex.Price) == 0 {
		lex.Price = def.Price
	}
	if len(lex.Locality) == 0 {
		lex.Locality = def.Locality
	}
	if len(lex.Temporal) == 0 {
		lex.Temporal = def.Temporal
	}
	if len(lex.Constraint) == 0 {
		lex.Constraint = def.Constraint
	}
	if len(lex.Brands) == 0 {
		lex.Brands = def.Brands
	}
	if lex.Synonyms == nil {
		lex.Synonyms = def.Synonyms
	}
}

// Extract derives the eight boolean signals from a token list. All eight
// tests run on every call; there is no early exit. The numeric signal is
// set by any token containing a digit or by price vocabulary.
func (l *Lexicon) Extract(tokens []string) core.Signals {
	present := make(map[string]bool, len(tokens))
	hasDigit := false
	for _, tok := range tokens {
		present[tok] = true
		if !hasDigit && strings.ContainsFunc(tok, unicode.IsDigit) {
			hasDigit = true
		}
	}

	anyOf := func(words []string) bool {
		for _, w := range words {
			if present[w] {
				return true
			}
		}
		return false
	}

	return core.Signals{
		Action:     anyOf(l.Action),
		Comparison: anyOf(l.Comparison),
		Question:   anyOf(l.Question),
		Numeric:    hasDigit || anyOf(l.Price),
		Locality:   anyOf(l.Locality),
		Temporal:   anyOf(l.Temporal),
		Constraint: anyOf(l.Constraint),
		Brand:      anyOf(l.Brands),
	}
}
