package analyze

import (
	"strings"

	"github.com/poiesic/intentify/ontology"
)

// maxExpansions caps the number of expanded query variants.
const maxExpansions = 5

// branchTemplates maps a top-level intent family to its expansion
// templates. "{q}" stands for the normalized query. Families without
// templates (navigational) expand through synonyms only.
var branchTemplates = map[string][]string{
	"commercial":    {"{q} review", "{q} vs", "best {q}"},
	"transactional": {"buy {q}", "{q} price", "{q} discount"},
	"informational": {"what is {q}", "{q} guide", "how to {q}"},
	"local":         {"{q} near me", "{q} hours"},
}

// expander generates related query strings from the primary intent family
// and the synonym table.
type expander struct {
	tree     *ontology.Tree
	synonyms map[string][]string
}

// Expand builds up to maxExpansions variants: first the templates of the
// primary intent's family, then one variant per known synonym with the
// first occurrence of the token substituted. The output is deduplicated
// preserving order and never errors.
func (e *expander) Expand(query, primaryIntent string, tokens []string) []string {
	var out []string

	branch := e.tree.Branch(primaryIntent)
	for _, tpl := range branchTemplates[branch] {
		out = append(out, strings.ReplaceAll(tpl, "{q}", query))
	}

	for _, tok := range tokens {
		for _, syn := range e.synonyms[tok] {
			out = append(out, strings.Replace(query, tok, syn, 1))
		}
	}

	seen := make(map[string]bool, len(out))
	unique := make([]string, 0, maxExpansions)
	for _, q := range out {
		if seen[q] {
			continue
		}
		seen[q] = true
		unique = append(unique, q)
		if len(unique) == maxExpansions {
			break
		}
	}
	return unique
}
