// Copyright 2026 Mataa Market
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


// Package lexicon holds the static linguistic knowledge the query parser
// runs against: intent and price phrasing patterns, brand and entity
// keyword tables, the city-to-governorate map, and per-category price
// bands for colloquial Egyptian Arabic.
//
// Two matching disciplines are used and both are part of the contract:
//
//   - Pattern lists are evaluated in declared order; the first pattern
//     whose regular expression matches wins and later patterns are not
//     consulted.
//   - Keyword tables are evaluated by descending keyword length (longest
//     literal substring wins; equal lengths keep declaration order),
//     case-insensitive for Latin tokens.
//
// The built-in tables are rule heuristics, not a trained model. Vocabulary
// can be extended without recompiling by applying a YAML overlay file, see
// LoadOverlay.
package lexicon
