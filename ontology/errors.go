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


package ontology

import "errors"

var (
	// ErrInvalidOntology indicates the node list failed validation.
	ErrInvalidOntology = errors.New("invalid ontology")

	// ErrEmptyOntology indicates the node list is empty.
	ErrEmptyOntology = errors.New("ontology has no nodes")

	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("node id cannot be empty")

	// ErrDuplicateNode indicates two nodes share an ID.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrDanglingParent indicates a parent reference to a missing node.
	ErrDanglingParent = errors.New("parent id references unknown node")

	// ErrCycle indicates a parent chain that never reaches a root.
	ErrCycle = errors.New("cycle in parent chain")

	// ErrBadWeight indicates a default weight outside [0, 1].
	ErrBadWeight = errors.New("default weight must be in [0, 1]")
)
