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


// Package parse turns one colloquial Egyptian Arabic search phrase into a
// structured core.ParsedQuery.
//
// The Parser runs a fixed, ordered list of extraction stages over a
// mutable "remaining text" accumulator. Each stage tests its patterns or
// keyword tables against the remaining text only, writes matched facets
// into the result, and removes the matched substring so later stages never
// re-examine consumed text. Stage order is the disambiguation contract: a
// number stripped as a price can no longer be read as a year, a city name
// stripped as a location can no longer be read as a category keyword.
//
// Parsing is pure and synchronous; a Parser is safe for concurrent use.
package parse
