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


// Package ontology models the hierarchical intent taxonomy.
//
// A Tree is an immutable forest of intent nodes. Nodes without a parent are
// roots (top-level intent families such as informational or transactional);
// child nodes refine a family into concrete intents. Trees are validated
// once at construction and never mutated, so any number of concurrent
// analyses can read the same Tree without coordination.
//
// The builtin taxonomy is available through Default; deployments can swap
// it for their own node list loaded from YAML with LoadFile.
package ontology
