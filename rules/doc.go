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


// Package rules implements deterministic rule evaluation over query signals.
//
// A Table is an ordered, immutable list of rules. Each rule names the
// signals it requires, the signals that veto it, a target intent, and the
// score it contributes when it fires. Evaluation is exhaustive: every
// matching rule fires, and the fired-rule trace preserves table order.
//
// Tables are validated once at construction and never mutated, so a single
// Table can serve any number of concurrent analyses.
package rules
