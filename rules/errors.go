package rules

import "errors"

var (
	// ErrInvalidRule indicates the rule table failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrEmptyTable indicates the rule list is empty.
	ErrEmptyTable = errors.New("rule table has no rules")

	// ErrEmptyRuleID indicates a rule with an empty ID.
	ErrEmptyRuleID = errors.New("rule id cannot be empty")

	// ErrDuplicateRule indicates two rules share an ID.
	ErrDuplicateRule = errors.New("duplicate rule id")

	// ErrEmptyTarget indicates a rule without a target intent.
	ErrEmptyTarget = errors.New("rule target intent cannot be empty")

	// ErrBadDelta indicates a non-positive score delta.
	ErrBadDelta = errors.New("score delta must be positive")

	// ErrUnknownSignal indicates a rule referencing a signal name outside
	// the canonical signal set.
	ErrUnknownSignal = errors.New("unknown signal name")
)
