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


// Package kv defines the string key-value port the wish store persists
// through. Implementations exist for BadgerDB (kv/badger) and an in-memory
// map (kv/memory); anything with get/set/remove semantics — browser
// storage, a session store, a file — can back it.
package kv

import "errors"

var (
	// ErrQuotaExceeded indicates a write was rejected because the backing
	// store is out of space. Callers may shrink their payload and retry.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStoreClosed indicates the store was used after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Store is a minimal string key-value store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores the value under key, overwriting any existing value.
	// Returns ErrQuotaExceeded when the backing store is out of space.
	Set(key, value string) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error

	// Close releases the store's resources.
	Close() error
}
