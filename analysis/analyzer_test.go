package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataa-market/mataa/lexicon"
	"github.com/mataa-market/mataa/parse"
)

func newTestAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	parser, err := parse.NewParser(lexicon.Default())
	require.NoError(t, err)

	analyzer, err := NewAnalyzer(parser, opts...)
	require.NoError(t, err)
	t.Cleanup(analyzer.Release)
	return analyzer
}

func TestNewAnalyzer(t *testing.T) {
	_, err := NewAnalyzer(nil)
	assert.ErrorIs(t, err, ErrParserRequired)
}

func TestAnalyze(t *testing.T) {
	analyzer := newTestAnalyzer(t, WithPoolSize(2))

	report, err := analyzer.Analyze([]string{
		"موبايل سامسونج في الجيزة",
		"عربية تحت 200000 جنيه",
		"حاجة غامضة خالص",
		"",
		"   ",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.WithCategory)
	assert.Equal(t, 1, report.WithBrand)
	assert.Equal(t, 1, report.WithLocation)
	assert.Equal(t, 1, report.WithPrice)
	assert.Equal(t, 1, report.LowConfidence)
	assert.Greater(t, report.MeanConfidence, 0.0)

	// The unstructured query's tokens show up as lexicon gaps.
	assert.Equal(t, 1, report.UnresolvedTokens["غامضة"])
	assert.Equal(t, 1, report.UnresolvedTokens["خالص"])
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	report, err := analyzer.Analyze(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0.0, report.MeanConfidence)
}

func TestTopUnresolved(t *testing.T) {
	report := &Report{UnresolvedTokens: map[string]int{
		"تالت": 1,
		"اول":  3,
		"تاني": 2,
		"رابع": 1,
	}}

	assert.Equal(t, []string{"اول", "تاني", "تالت"}, report.TopUnresolved(3))
	assert.Equal(t, []string{"اول"}, report.TopUnresolved(1))
	assert.Len(t, report.TopUnresolved(10), 4)
}
