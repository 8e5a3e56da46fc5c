package analyze

import "errors"

var (
	// ErrOntologyRequired is returned when an ontology tree is not provided.
	ErrOntologyRequired = errors.New("ontology required")

	// ErrRulesRequired is returned when a rule table is not provided.
	ErrRulesRequired = errors.New("rule table required")

	// ErrLexiconRequired is returned when a lexicon is not provided.
	ErrLexiconRequired = errors.New("lexicon required")

	// ErrBadDamping is returned for a damping factor outside (0, 1).
	ErrBadDamping = errors.New("damping factor must be in (0, 1)")

	// ErrBadFallbackWeight is returned for a fallback weight outside [0, 1].
	ErrBadFallbackWeight = errors.New("fallback weight must be in [0, 1]")

	// ErrEmptyDefaultIntent is returned for an empty default intent id.
	ErrEmptyDefaultIntent = errors.New("default intent cannot be empty")
)
