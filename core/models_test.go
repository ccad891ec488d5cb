package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsedQueryDefaults(t *testing.T) {
	q := NewParsedQuery("عايز موبايل")

	assert.Equal(t, "عايز موبايل", q.OriginalQuery)
	assert.Equal(t, IntentBrowse, q.Intent)
	assert.Equal(t, PriceAny, q.PriceIntent)
	assert.Equal(t, ConditionAny, q.ConditionHint)
	assert.Empty(t, q.Categories)
	assert.Empty(t, q.PrimaryCategory)
	assert.NotNil(t, q.ExtractedFields)
	assert.Nil(t, q.PriceMin)
	assert.Nil(t, q.PriceMax)
	assert.Nil(t, q.Year)
}

func TestAddCategory(t *testing.T) {
	q := NewParsedQuery("")

	q.AddCategory("phones")
	q.AddCategory("gold")
	q.AddCategory("phones")

	assert.Equal(t, []string{"phones", "gold"}, q.Categories)
	assert.True(t, q.HasCategory("gold"))
	assert.False(t, q.HasCategory("cars"))
}

func TestNewWishID(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("deterministic for identical content", func(t *testing.T) {
		a := NewWishID("عربية تويوتا", now)
		b := NewWishID("عربية تويوتا", now)
		assert.Equal(t, a, b)
	})

	t.Run("distinct for different queries", func(t *testing.T) {
		a := NewWishID("عربية تويوتا", now)
		b := NewWishID("عربية هيونداي", now)
		assert.NotEqual(t, a, b)
	})

	t.Run("distinct for different times", func(t *testing.T) {
		a := NewWishID("عربية تويوتا", now)
		b := NewWishID("عربية تويوتا", now.Add(time.Second))
		assert.NotEqual(t, a, b)
	})

	t.Run("hex encoded 64 bits", func(t *testing.T) {
		id := NewWishID("x", now)
		require.Len(t, string(id), 16)
	})
}
