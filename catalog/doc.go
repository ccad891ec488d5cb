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


// Package catalog defines the collaborator interfaces the feedback
// generators consume: category configuration (icons, names, field options
// for resolving brand labels) and the governorate list. StaticCatalog is
// the built-in implementation.
package catalog
