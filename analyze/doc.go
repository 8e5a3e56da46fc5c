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


// Package analyze implements the query intent classification pipeline.
//
// A single analysis runs as one synchronous sequence of pure
// transformations:
//
//	normalize -> extract signals -> evaluate rules -> score ->
//	select primary/secondary -> expand -> estimate confidence
//
// The Analyzer holds only immutable configuration (ontology tree, rule
// table, lexicon), so any number of calls may run concurrently against the
// same Analyzer. Batch analysis fans queries out over a worker pool and
// reassembles results in request order.
package analyze
