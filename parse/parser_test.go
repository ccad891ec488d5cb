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


package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/lexicon"
)

func newTestParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	p, err := NewParser(lexicon.Default(), opts...)
	require.NoError(t, err)
	return p
}

func TestNewParser(t *testing.T) {
	t.Run("requires a lexicon", func(t *testing.T) {
		_, err := NewParser(nil)
		assert.ErrorIs(t, err, ErrLexiconRequired)
	})

	t.Run("nil option values fall back to defaults", func(t *testing.T) {
		p, err := NewParser(lexicon.Default(), WithLogger(nil), WithMonitor(nil))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		q := p.Parse(text)
		assert.Equal(t, core.IntentBrowse, q.Intent)
		assert.Equal(t, core.PriceAny, q.PriceIntent)
		assert.Empty(t, q.Categories)
		assert.Empty(t, q.PrimaryCategory)
		assert.InDelta(t, 0.5, q.Confidence, 1e-9)
	}
}

func TestParsePrice(t *testing.T) {
	p := newTestParser(t)

	t.Run("under sets only the maximum", func(t *testing.T) {
		q := p.Parse("تحت 5000 جنيه")
		require.NotNil(t, q.PriceMax)
		assert.Equal(t, 5000, *q.PriceMax)
		assert.Nil(t, q.PriceMin)
		assert.Equal(t, core.PriceExact, q.PriceIntent)
	})

	t.Run("over sets only the minimum", func(t *testing.T) {
		q := p.Parse("فوق 2000 جنيه")
		require.NotNil(t, q.PriceMin)
		assert.Equal(t, 2000, *q.PriceMin)
		assert.Nil(t, q.PriceMax)
		assert.Equal(t, core.PriceExact, q.PriceIntent)
	})

	t.Run("around sets a rounded band", func(t *testing.T) {
		q := p.Parse("حوالي 1000 جنيه")
		require.NotNil(t, q.PriceMin)
		require.NotNil(t, q.PriceMax)
		assert.Equal(t, 700, *q.PriceMin)
		assert.Equal(t, 1300, *q.PriceMax)
		assert.Equal(t, core.PriceExact, q.PriceIntent)
	})

	t.Run("range sets both bounds literally", func(t *testing.T) {
		q := p.Parse("من 3000 لـ 5000 جنيه")
		require.NotNil(t, q.PriceMin)
		require.NotNil(t, q.PriceMax)
		assert.Equal(t, 3000, *q.PriceMin)
		assert.Equal(t, 5000, *q.PriceMax)
		assert.Equal(t, core.PriceExact, q.PriceIntent)
	})

	t.Run("exact phrase overrides qualitative tier", func(t *testing.T) {
		q := p.Parse("عربية رخيصة تحت 200000 جنيه")
		assert.Equal(t, core.PriceExact, q.PriceIntent)
		require.NotNil(t, q.PriceMax)
		assert.Equal(t, 200000, *q.PriceMax)
		assert.Nil(t, q.PriceMin)
	})

	t.Run("qualitative tier materializes a band once the category is known", func(t *testing.T) {
		q := p.Parse("عربية رخيصة")
		assert.Equal(t, core.PriceBudget, q.PriceIntent)
		assert.Equal(t, "cars", q.PrimaryCategory)
		require.NotNil(t, q.PriceMin)
		require.NotNil(t, q.PriceMax)
		assert.Equal(t, 0, *q.PriceMin)
		assert.Equal(t, 300000, *q.PriceMax)
	})

	t.Run("qualitative tier without a category stays unbounded", func(t *testing.T) {
		q := p.Parse("حاجة رخيصة")
		assert.Equal(t, core.PriceBudget, q.PriceIntent)
		assert.Nil(t, q.PriceMin)
		assert.Nil(t, q.PriceMax)
	})
}

func TestParseStorage(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("آيفون 128 جيجا")
	assert.Equal(t, "phones", q.PrimaryCategory)
	assert.Equal(t, "apple", q.Brand)
	assert.Equal(t, "128", q.ExtractedFields["storage"])

	t.Run("terabytes normalize to gigabytes", func(t *testing.T) {
		q := p.Parse("موبايل 1 تيرا")
		assert.Equal(t, "1024", q.ExtractedFields["storage"])
		assert.Equal(t, "phones", q.PrimaryCategory)
	})
}

func TestParseGift(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("هدية لمراتي")
	assert.Equal(t, core.IntentGift, q.Intent)
	assert.Equal(t, "مراتي", q.GiftTarget)
	assert.Equal(t, "gold", q.PrimaryCategory)
	for _, category := range []string{"gold", "luxury", "fashion", "phones"} {
		assert.True(t, q.HasCategory(category), category)
	}
}

func TestParseRealEstate(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("شقة 3 غرف مدينة نصر")
	assert.Equal(t, "real_estate", q.PrimaryCategory)
	assert.Equal(t, "apartments", q.Subcategory)
	assert.Equal(t, "3", q.ExtractedFields["rooms"])
	assert.Equal(t, "مدينة نصر", q.City)
	assert.Equal(t, "القاهرة", q.Governorate)
	assert.Empty(t, q.CleanQuery)
}

func TestParseCarWithYear(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("كورولا 2018")
	assert.Equal(t, "toyota", q.Brand)
	assert.Equal(t, "corolla", q.Model)
	assert.Equal(t, "cars", q.PrimaryCategory)
	require.NotNil(t, q.Year)
	assert.Equal(t, 2018, *q.Year)
}

func TestParseKarat(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("خاتم عيار 21")
	assert.Equal(t, "21", q.ExtractedFields["karat"])
	assert.Equal(t, "gold", q.PrimaryCategory)
	assert.Equal(t, "rings", q.Subcategory)
}

func TestParseExchange(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("بدل موبايلي بآيفون")
	assert.Equal(t, core.IntentExchange, q.Intent)
	assert.Equal(t, core.SaleExchange, q.SaleType)
	assert.Equal(t, "apple", q.Brand)
	assert.Equal(t, "phones", q.PrimaryCategory)
}

func TestConditionIsNotConsumed(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("عربية مستعملة")
	assert.Equal(t, core.ConditionGood, q.ConditionHint)
	assert.Equal(t, "cars", q.PrimaryCategory)
	// The condition stage leaves its match in place, so the condition
	// word survives into the clean query.
	assert.Equal(t, "مستعملة", q.CleanQuery)
}

func TestConfidence(t *testing.T) {
	p := newTestParser(t)

	t.Run("grows with extracted facets", func(t *testing.T) {
		texts := []string{
			"حاجة حلوة",
			"موبايل",
			"موبايل سامسونج",
			"موبايل سامسونج في الجيزة",
			"موبايل سامسونج في الجيزة جديد",
		}
		prev := 0.0
		for _, text := range texts {
			q := p.Parse(text)
			assert.GreaterOrEqual(t, q.Confidence, prev, text)
			prev = q.Confidence
		}
	})

	t.Run("never exceeds one", func(t *testing.T) {
		q := p.Parse("عايز اشتري آيفون 13 جديد 256 جيجا موديل 2022 في مدينة نصر تحت 30000 جنيه")
		assert.LessOrEqual(t, q.Confidence, 1.0)
		assert.GreaterOrEqual(t, q.Confidence, 0.9)
	})
}

// recordingMonitor captures the stage callbacks for assertion.
type recordingMonitor struct {
	started  string
	stages   []string
	finished *core.ParsedQuery
}

func (m *recordingMonitor) Start(query string) { m.started = query }

func (m *recordingMonitor) StageApplied(stage, matched, remaining string) {
	m.stages = append(m.stages, stage)
}

func (m *recordingMonitor) Finish(q *core.ParsedQuery) { m.finished = q }

func TestMonitorCallbacks(t *testing.T) {
	monitor := &recordingMonitor{}
	p := newTestParser(t, WithMonitor(monitor))

	q := p.Parse("موبايل سامسونج")

	assert.Equal(t, "موبايل سامسونج", monitor.started)
	assert.Equal(t, len(pipeline), len(monitor.stages))
	assert.Equal(t, "intent", monitor.stages[0])
	assert.Equal(t, "cleanup", monitor.stages[len(monitor.stages)-1])
	assert.Same(t, q, monitor.finished)

	t.Run("empty input skips the stages", func(t *testing.T) {
		monitor := &recordingMonitor{}
		p := newTestParser(t, WithMonitor(monitor))
		q := p.Parse("  ")
		assert.Empty(t, monitor.stages)
		assert.Same(t, q, monitor.finished)
	})
}
