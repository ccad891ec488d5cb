package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataa-market/mataa/core"
)

func TestMatchIntent(t *testing.T) {
	lex := Default()

	cases := []struct {
		name   string
		text   string
		intent core.Intent
	}{
		{"buy", "عايز اشتري موبايل", core.IntentBuy},
		{"exchange", "بدل عربيتي بموتوسيكل", core.IntentExchange},
		{"gift", "هدية لمراتي", core.IntentGift},
		{"urgent", "محتاج تلاجة ضروري", core.IntentUrgent},
		{"bargain", "ارخص موبايل", core.IntentBargain},
		{"compare", "ايه الفرق بين سامسونج وشاومي", core.IntentCompare},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, matched, ok := lex.MatchIntent(tc.text)
			require.True(t, ok)
			assert.Equal(t, tc.intent, intent)
			assert.NotEmpty(t, matched)
		})
	}

	t.Run("no intent phrase", func(t *testing.T) {
		_, _, ok := lex.MatchIntent("موبايل سامسونج")
		assert.False(t, ok)
	})
}

func TestMatchPriceTier(t *testing.T) {
	lex := Default()

	tier, _, ok := lex.MatchPriceTier("عربية رخيصة")
	require.True(t, ok)
	assert.Equal(t, core.PriceBudget, tier)

	tier, _, ok = lex.MatchPriceTier("ساعة فخمة")
	require.True(t, ok)
	assert.Equal(t, core.PricePremium, tier)
}

func TestMatchCondition(t *testing.T) {
	lex := Default()

	t.Run("like new wins over new on overlap", func(t *testing.T) {
		// "زي الجديد" contains "جديد"; pattern order decides.
		hint, _, ok := lex.MatchCondition("موبايل زي الجديد")
		require.True(t, ok)
		assert.Equal(t, core.ConditionLikeNew, hint)
	})

	t.Run("plain new", func(t *testing.T) {
		hint, _, ok := lex.MatchCondition("موبايل جديد")
		require.True(t, ok)
		assert.Equal(t, core.ConditionNew, hint)
	})

	t.Run("used", func(t *testing.T) {
		hint, _, ok := lex.MatchCondition("عربية مستعملة")
		require.True(t, ok)
		assert.Equal(t, core.ConditionGood, hint)
	})
}

func TestFindBrand(t *testing.T) {
	lex := Default()

	t.Run("brand keyword", func(t *testing.T) {
		b, matched, ok := lex.FindBrand("عايز آيفون")
		require.True(t, ok)
		assert.Equal(t, "apple", b.Brand)
		assert.Equal(t, "phones", b.Category)
		assert.Equal(t, "آيفون", matched)
	})

	t.Run("model keyword implies brand", func(t *testing.T) {
		b, _, ok := lex.FindBrand("كورولا 2018")
		require.True(t, ok)
		assert.Equal(t, "toyota", b.Brand)
		assert.Equal(t, "corolla", b.Model)
		assert.Equal(t, "cars", b.Category)
	})

	t.Run("latin keywords fold case", func(t *testing.T) {
		b, matched, ok := lex.FindBrand("IPHONE 13 PRO")
		require.True(t, ok)
		assert.Equal(t, "apple", b.Brand)
		assert.Equal(t, "IPHONE", matched)
	})
}

func TestFindCityLongestMatch(t *testing.T) {
	lex := Default()

	t.Run("longer compound name wins", func(t *testing.T) {
		// "شبرا الخيمة" contains "شبرا"; the longer entry must win.
		c, _, ok := lex.FindCity("شقة في شبرا الخيمة")
		require.True(t, ok)
		assert.Equal(t, "شبرا الخيمة", c.Name)
		assert.Equal(t, "القليوبية", c.Governorate)
	})

	t.Run("city resolves governorate", func(t *testing.T) {
		c, _, ok := lex.FindCity("شقة في مدينة نصر")
		require.True(t, ok)
		assert.Equal(t, "القاهرة", c.Governorate)
	})
}

func TestFindCategoryKeyword(t *testing.T) {
	lex := Default()

	category, _, ok := lex.FindCategoryKeyword("عايز موبيليا")
	require.True(t, ok)
	assert.Equal(t, "furniture", category)

	_, _, ok = lex.FindCategoryKeyword("xyz")
	assert.False(t, ok)
}

func TestBand(t *testing.T) {
	lex := Default()

	band, ok := lex.Band("cars", core.PriceBudget)
	require.True(t, ok)
	assert.Less(t, band.Min, band.Max)

	_, ok = lex.Band("cars", core.PriceAny)
	assert.False(t, ok)

	_, ok = lex.Band("nonsense", core.PriceBudget)
	assert.False(t, ok)
}

func TestSortLongestFirst(t *testing.T) {
	items := []string{"ب", "ابج", "اب", "دهو"}
	sortLongestFirst(items, func(s string) string { return s })

	assert.Equal(t, []string{"ابج", "دهو", "اب", "ب"}, items)
}

func TestMatchFold(t *testing.T) {
	m, ok := matchFold("عايز Iphone حلو", "iphone")
	require.True(t, ok)
	assert.Equal(t, "Iphone", m)

	_, ok = matchFold("عايز موبايل", "لابتوب")
	assert.False(t, ok)
}
