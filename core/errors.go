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

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a query failed boundary validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrQueryEmpty indicates the query is empty or whitespace-only.
	ErrQueryEmpty = errors.New("query is empty")

	// ErrQueryTooShort indicates the trimmed query is below the minimum length.
	ErrQueryTooShort = errors.New("query too short")

	// ErrQueryTooLong indicates the trimmed query exceeds the maximum length.
	ErrQueryTooLong = errors.New("query too long")

	// ErrNoQueries indicates a batch request carried no queries.
	ErrNoQueries = errors.New("no queries provided")

	// ErrPipeline indicates an unexpected failure inside the analysis
	// pipeline. The orchestrator is the only place that produces it.
	ErrPipeline = errors.New("pipeline failure")
)
