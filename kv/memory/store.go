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


// Package memory provides a map-backed kv.Store for tests and ephemeral
// use, with an adjustable quota to exercise out-of-space handling.
package memory

import (
	"sync"

	"github.com/mataa-market/mataa/kv"
)

// Store is an in-memory kv.Store.
type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	quota  int // max value size in bytes, 0 means unlimited
	closed bool
}

var _ kv.Store = (*Store)(nil)

// NewStore creates an empty in-memory store with no quota.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// SetQuota limits accepted value sizes to max bytes; writes above the
// limit fail with kv.ErrQuotaExceeded. Zero removes the limit.
func (s *Store) SetQuota(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quota = max
}

// Get implements kv.Store.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, kv.ErrStoreClosed
	}
	value, ok := s.data[key]
	return value, ok, nil
}

// Set implements kv.Store.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kv.ErrStoreClosed
	}
	if s.quota > 0 && len(value) > s.quota {
		return kv.ErrQuotaExceeded
	}
	s.data[key] = value
	return nil
}

// Remove implements kv.Store.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kv.ErrStoreClosed
	}
	delete(s.data, key)
	return nil
}

// Close implements kv.Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
