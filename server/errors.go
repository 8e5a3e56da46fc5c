package server

import "errors"

// ErrAnalyzerRequired is returned when an analyzer is not provided.
var ErrAnalyzerRequired = errors.New("analyzer required")
