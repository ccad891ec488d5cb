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


package wish

import "errors"

var (
	// ErrStorageRequired is returned when a key-value store is not provided.
	ErrStorageRequired = errors.New("key-value storage required")

	// ErrParsedQueryRequired is returned when a wish is created without a
	// parsed query snapshot.
	ErrParsedQueryRequired = errors.New("parsed query required")

	// ErrMutatorRequired is returned when Update is called without a
	// mutate function.
	ErrMutatorRequired = errors.New("mutate function required")

	// ErrWishNotFound indicates no wish exists with the requested id.
	ErrWishNotFound = errors.New("wish not found")
)
