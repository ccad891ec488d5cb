package parse

import "github.com/mataa-market/mataa/core"

// Confidence increments. The literal constants are load-bearing for
// downstream low-confidence UX decisions; do not retune them.
const (
	scoreBase        = 0.30
	scoreCategory    = 0.20
	scoreBrand       = 0.15
	scoreGovernorate = 0.10
	scorePriceIntent = 0.10
	scoreCondition   = 0.05
	scoreYear        = 0.05
	scoreRichFields  = 0.05
)

// Score computes the additive confidence heuristic for a parsed query,
// capped to [0, 1]. The increments can sum past 1 before clamping.
func Score(q *core.ParsedQuery) float64 {
	confidence := scoreBase
	if q.PrimaryCategory != "" {
		confidence += scoreCategory
	}
	if q.Brand != "" {
		confidence += scoreBrand
	}
	if q.Governorate != "" {
		confidence += scoreGovernorate
	}
	if q.PriceIntent != core.PriceAny {
		confidence += scorePriceIntent
	}
	if q.ConditionHint != core.ConditionAny {
		confidence += scoreCondition
	}
	if q.Year != nil {
		confidence += scoreYear
	}
	if len(q.ExtractedFields) > 2 {
		confidence += scoreRichFields
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
