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

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/kv/memory"
)

// tickingClock hands out strictly increasing timestamps so every created
// wish gets a distinct creation time.
func tickingClock() func() time.Time {
	current := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	backing := memory.NewStore()
	store, err := NewStore(backing, WithClock(tickingClock()))
	require.NoError(t, err)
	return store, backing
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorIs(t, err, ErrStorageRequired)
}

func TestCreate(t *testing.T) {
	t.Run("persists a wish with parsed defaults", func(t *testing.T) {
		store, _ := newTestStore(t)

		parsed := core.NewParsedQuery("عربية تويوتا في الجيزة")
		parsed.PrimaryCategory = "cars"
		parsed.Governorate = "الجيزة"
		max := 500000
		parsed.PriceMax = &max

		created, err := store.Create(parsed.OriginalQuery, parsed, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, "cars", created.Filters.Category)
		assert.Equal(t, "الجيزة", created.Filters.Governorate)
		require.NotNil(t, created.Filters.PriceMax)
		assert.Equal(t, 500000, *created.Filters.PriceMax)
		assert.Equal(t, "cars — عربية تويوتا في الجيزة — في الجيزة — تحت 500000 جنيه", created.DisplayText)

		all := store.All()
		require.Len(t, all, 1)
		assert.Equal(t, created.ID, all[0].ID)
	})

	t.Run("explicit filters win over parsed defaults", func(t *testing.T) {
		store, _ := newTestStore(t)

		parsed := core.NewParsedQuery("موبايل")
		parsed.PrimaryCategory = "phones"

		created, err := store.Create("موبايل", parsed, &core.WishFilters{Category: "electronics"})
		require.NoError(t, err)
		assert.Equal(t, "electronics", created.Filters.Category)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Create("", core.NewParsedQuery(""), nil)
		assert.ErrorIs(t, err, core.ErrEmptyWishQuery)
	})

	t.Run("rejects nil parsed query", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Create("موبايل", nil, nil)
		assert.ErrorIs(t, err, ErrParsedQueryRequired)
	})
}

func TestCreateDeduplicates(t *testing.T) {
	store, _ := newTestStore(t)
	parsed := core.NewParsedQuery("عربية تويوتا")

	first, err := store.Create("عربية تويوتا", parsed, nil)
	require.NoError(t, err)

	_, err = store.ToggleActive(first.ID)
	require.NoError(t, err)

	second, err := store.Create("عربية تويوتا", parsed, nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsActive, "re-saving must reactivate")
	assert.True(t, second.LastCheckedAt.After(first.LastCheckedAt))

	all := store.All()
	require.Len(t, all, 1)
}

func TestCreateEvictsOldest(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < MaxWishes+2; i++ {
		query := fmt.Sprintf("عربية رقم %d", i)
		_, err := store.Create(query, core.NewParsedQuery(query), nil)
		require.NoError(t, err)
	}

	all := store.All()
	require.Len(t, all, MaxWishes)

	// Newest first: the two earliest creations fell off the end.
	assert.Equal(t, fmt.Sprintf("عربية رقم %d", MaxWishes+1), all[0].Query)
	assert.Equal(t, "عربية رقم 2", all[len(all)-1].Query)
}

func TestUpdateAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	created, err := store.Create("موبايل", core.NewParsedQuery("موبايل"), nil)
	require.NoError(t, err)

	t.Run("update mutates and persists", func(t *testing.T) {
		updated, err := store.Update(created.ID, func(w *core.SearchWish) {
			w.DisplayText = "مخصص"
		})
		require.NoError(t, err)
		assert.Equal(t, "مخصص", updated.DisplayText)
		assert.Equal(t, "مخصص", store.All()[0].DisplayText)
	})

	t.Run("update requires a mutator", func(t *testing.T) {
		_, err := store.Update(created.ID, nil)
		assert.ErrorIs(t, err, ErrMutatorRequired)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Update(core.WishID("deadbeefdeadbeef"), func(*core.SearchWish) {})
		assert.ErrorIs(t, err, ErrWishNotFound)

		assert.ErrorIs(t, store.Delete(core.WishID("deadbeefdeadbeef")), ErrWishNotFound)
	})

	t.Run("delete removes the wish", func(t *testing.T) {
		require.NoError(t, store.Delete(created.ID))
		assert.Empty(t, store.All())
	})
}

func TestMatchLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	created, err := store.Create("موبايل", core.NewParsedQuery("موبايل"), nil)
	require.NoError(t, err)

	updated, err := store.RecordMatches(created.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MatchCount)
	assert.Equal(t, 3, updated.NewMatchCount)

	updated, err = store.RecordMatches(created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.MatchCount)
	assert.Equal(t, 5, updated.NewMatchCount)

	assert.Equal(t, 5, store.ActiveNewMatches())

	t.Run("negative count is rejected", func(t *testing.T) {
		_, err := store.RecordMatches(created.ID, -1)
		assert.Error(t, err)
	})

	t.Run("viewing clears the unseen counter only", func(t *testing.T) {
		viewed, err := store.MarkViewed(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, viewed.NewMatchCount)
		assert.Equal(t, 5, viewed.MatchCount)
		assert.Equal(t, 0, store.ActiveNewMatches())
	})

	t.Run("inactive wishes are excluded from the badge", func(t *testing.T) {
		_, err := store.RecordMatches(created.ID, 1)
		require.NoError(t, err)
		require.Equal(t, 1, store.ActiveNewMatches())

		_, err = store.ToggleActive(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, store.ActiveNewMatches())
	})
}

func TestCorruptStorageDegradesToEmpty(t *testing.T) {
	backing := memory.NewStore()
	require.NoError(t, backing.Set(storageKey, "{definitely not json"))

	store, err := NewStore(backing, WithClock(tickingClock()))
	require.NoError(t, err)

	assert.Empty(t, store.All())

	// The store remains usable and overwrites the corrupt blob.
	created, err := store.Create("موبايل", core.NewParsedQuery("موبايل"), nil)
	require.NoError(t, err)
	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestQuotaEvictionRetry(t *testing.T) {
	backing := memory.NewStore()
	store, err := NewStore(backing, WithClock(tickingClock()))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		query := fmt.Sprintf("عربية رقم %d", i)
		_, err := store.Create(query, core.NewParsedQuery(query), nil)
		require.NoError(t, err)
	}

	// Cap the quota at the current blob size, so the next write trips it
	// and the retry with two fewer wishes fits.
	blob, found, err := backing.Get(storageKey)
	require.NoError(t, err)
	require.True(t, found)
	backing.SetQuota(len(blob))

	created, err := store.Create("عربية جديدة", core.NewParsedQuery("عربية جديدة"), nil)
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 4)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "عربية رقم 4", all[1].Query)
	assert.Equal(t, "عربية رقم 2", all[len(all)-1].Query)

	t.Run("hopeless quota is swallowed", func(t *testing.T) {
		backing.SetQuota(2)
		_, err := store.Create("عربية تانية", core.NewParsedQuery("عربية تانية"), nil)
		assert.NoError(t, err)
	})
}
