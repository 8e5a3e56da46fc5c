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


package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinQueryLength is the minimum trimmed query length in runes.
	MinQueryLength = 3
	// MaxQueryLength is the maximum trimmed query length in runes.
	MaxQueryLength = 500
)

// ValidateQuery validates raw query text according to boundary rules.
//
// Validation rules:
//   - The query must not be empty or whitespace-only after trimming
//   - Trimmed length must be at least MinQueryLength runes
//   - Trimmed length must be at most MaxQueryLength runes
//
// Lengths are counted in runes so multi-byte scripts are not penalized.
func ValidateQuery(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrQueryEmpty)
	}

	length := utf8.RuneCountInString(trimmed)
	if length < MinQueryLength {
		return fmt.Errorf("%w: %w: %d runes, minimum %d", ErrInvalidQuery, ErrQueryTooShort, length, MinQueryLength)
	}
	if length > MaxQueryLength {
		return fmt.Errorf("%w: %w: %d runes, maximum %d", ErrInvalidQuery, ErrQueryTooLong, length, MaxQueryLength)
	}

	return nil
}

// ValidateQueries validates a batch of queries. An empty batch is rejected;
// individual queries are validated with ValidateQuery and reported with
// their position.
func ValidateQueries(queries []string) error {
	if len(queries) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrNoQueries)
	}
	for i, q := range queries {
		if err := ValidateQuery(q); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}
	return nil
}
