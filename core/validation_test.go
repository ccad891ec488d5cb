package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, IntentBuy.Valid())
	assert.False(t, Intent("sell").Valid())

	assert.True(t, PriceExact.Valid())
	assert.False(t, PriceIntent("cheap").Valid())

	assert.True(t, ConditionLikeNew.Valid())
	assert.False(t, ConditionHint("broken").Valid())

	// Sale type is an optional facet, so the zero value is legal.
	assert.True(t, SaleType("").Valid())
	assert.True(t, SaleExchange.Valid())
	assert.False(t, SaleType("rent").Valid())
}

func TestValidateWish(t *testing.T) {
	valid := func() *SearchWish {
		return &SearchWish{
			ID:     NewWishID("عربية تويوتا", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)),
			Query:  "عربية تويوتا",
			Parsed: *NewParsedQuery("عربية تويوتا"),
		}
	}

	t.Run("accepts a well formed wish", func(t *testing.T) {
		require.NoError(t, ValidateWish(valid()))
	})

	t.Run("rejects nil", func(t *testing.T) {
		err := ValidateWish(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWish)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		wish := valid()
		wish.Query = ""
		err := ValidateWish(wish)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyWishQuery)
	})

	t.Run("rejects bad parsed enums", func(t *testing.T) {
		wish := valid()
		wish.Parsed.Intent = "sell"
		err := ValidateWish(wish)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidIntent)
	})

	t.Run("rejects bad filter sale type", func(t *testing.T) {
		wish := valid()
		wish.Filters.SaleType = "rent"
		err := ValidateWish(wish)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSaleType)
	})
}

func TestValidateParsedQuery(t *testing.T) {
	q := NewParsedQuery("موبايل")
	require.NoError(t, ValidateParsedQuery(q))

	q.PriceIntent = "cheap"
	assert.ErrorIs(t, ValidateParsedQuery(q), ErrInvalidPriceIntent)

	assert.Error(t, ValidateParsedQuery(nil))
}
