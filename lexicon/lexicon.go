package lexicon

import (
	"regexp"

	"github.com/mataa-market/mataa/core"
)

// IntentPattern maps a phrasing pattern to a search intent.
type IntentPattern struct {
	Intent  core.Intent
	Pattern *regexp.Regexp
}

// TierPattern maps a qualitative price phrase to a price tier.
type TierPattern struct {
	Tier    core.PriceIntent
	Pattern *regexp.Regexp
}

// Exact-price multiplier semantics. The multiplier decides how the captured
// amount(s) turn into bounds: Under sets only the maximum, Over only the
// minimum, Around a ±30% band, Range both bounds literally.
const (
	MultiplierUnder  = -1
	MultiplierOver   = 1
	MultiplierAround = 0
	MultiplierRange  = 2
)

// ExactPricePattern captures a numeric price phrase. Patterns with
// MultiplierRange capture two amounts, all others capture one.
type ExactPricePattern struct {
	Pattern    *regexp.Regexp
	Multiplier int
}

// ConditionPattern maps a condition phrase to a condition hint.
type ConditionPattern struct {
	Hint    core.ConditionHint
	Pattern *regexp.Regexp
}

// Brand is a keyword table entry resolving to a brand and its home
// category. Model is set for model-name keywords that imply their brand.
type Brand struct {
	Keyword  string
	Brand    string
	Model    string
	Category string
}

// Entity is a keyword that implies a category, optionally a subcategory,
// and optionally pre-filled field values.
type Entity struct {
	Keyword     string
	Category    string
	Subcategory string
	Fields      map[string]string
}

// City maps a city name to its governorate.
type City struct {
	Name        string
	Governorate string
}

// GiftTarget maps a gift-recipient phrase to the categories gifts for that
// recipient are usually searched in.
type GiftTarget struct {
	Phrase     string
	Categories []string
}

// CategoryKeywords is the fallback keyword list for one category.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// PriceBand is an inclusive price range in EGP.
type PriceBand struct {
	Min int
	Max int
}

// Lexicon bundles all rule tables. It is immutable after construction and
// safe for concurrent use.
type Lexicon struct {
	intents     []IntentPattern
	tiers       []TierPattern
	exactPrices []ExactPricePattern
	conditions  []ConditionPattern

	giftTargets      []GiftTarget
	brands           []Brand
	entities         []Entity
	cities           []City
	governorates     []string
	categoryKeywords []CategoryKeywords

	priceBands map[string]map[core.PriceIntent]PriceBand
}

// Default returns the built-in Egyptian Arabic lexicon with all keyword
// tables sorted for longest-match evaluation.
func Default() *Lexicon {
	lex := &Lexicon{
		intents:          intentPatterns,
		tiers:            tierPatterns,
		exactPrices:      exactPricePatterns,
		conditions:       conditionPatterns,
		giftTargets:      append([]GiftTarget(nil), giftTargetTable...),
		brands:           append([]Brand(nil), brandTable...),
		entities:         append([]Entity(nil), entityTable...),
		cities:           append([]City(nil), cityTable...),
		governorates:     append([]string(nil), governorateNames...),
		categoryKeywords: cloneCategoryKeywords(categoryKeywordTable),
		priceBands:       priceBandTable,
	}
	lex.sortTables()
	return lex
}

func cloneCategoryKeywords(src []CategoryKeywords) []CategoryKeywords {
	out := make([]CategoryKeywords, len(src))
	for i, ck := range src {
		out[i] = CategoryKeywords{
			Category: ck.Category,
			Keywords: append([]string(nil), ck.Keywords...),
		}
	}
	return out
}

func (l *Lexicon) sortTables() {
	sortLongestFirst(l.giftTargets, func(g GiftTarget) string { return g.Phrase })
	sortLongestFirst(l.brands, func(b Brand) string { return b.Keyword })
	sortLongestFirst(l.entities, func(e Entity) string { return e.Keyword })
	sortLongestFirst(l.cities, func(c City) string { return c.Name })
	sortLongestFirst(l.governorates, func(s string) string { return s })
	for i := range l.categoryKeywords {
		sortLongestFirst(l.categoryKeywords[i].Keywords, func(s string) string { return s })
	}
}

// MatchIntent returns the intent of the first matching intent pattern and
// the matched substring.
func (l *Lexicon) MatchIntent(text string) (core.Intent, string, bool) {
	for _, p := range l.intents {
		if m := p.Pattern.FindString(text); m != "" {
			return p.Intent, m, true
		}
	}
	return "", "", false
}

// MatchPriceTier returns the tier of the first matching qualitative price
// pattern and the matched substring.
func (l *Lexicon) MatchPriceTier(text string) (core.PriceIntent, string, bool) {
	for _, p := range l.tiers {
		if m := p.Pattern.FindString(text); m != "" {
			return p.Tier, m, true
		}
	}
	return "", "", false
}

// ExactPricePatterns returns the ordered exact-price pattern list. The
// caller evaluates them in order and stops at the first match.
func (l *Lexicon) ExactPricePatterns() []ExactPricePattern {
	return l.exactPrices
}

// MatchCondition returns the hint of the first matching condition pattern
// and the matched substring.
func (l *Lexicon) MatchCondition(text string) (core.ConditionHint, string, bool) {
	for _, p := range l.conditions {
		if m := p.Pattern.FindString(text); m != "" {
			return p.Hint, m, true
		}
	}
	return "", "", false
}

// FindGiftTarget returns the longest gift-target phrase present in text.
func (l *Lexicon) FindGiftTarget(text string) (GiftTarget, string, bool) {
	for _, g := range l.giftTargets {
		if m, ok := matchFold(text, g.Phrase); ok {
			return g, m, true
		}
	}
	return GiftTarget{}, "", false
}

// FindBrand returns the longest brand keyword present in text.
func (l *Lexicon) FindBrand(text string) (Brand, string, bool) {
	for _, b := range l.brands {
		if m, ok := matchFold(text, b.Keyword); ok {
			return b, m, true
		}
	}
	return Brand{}, "", false
}

// FindEntity returns the longest entity keyword present in text.
func (l *Lexicon) FindEntity(text string) (Entity, string, bool) {
	for _, e := range l.entities {
		if m, ok := matchFold(text, e.Keyword); ok {
			return e, m, true
		}
	}
	return Entity{}, "", false
}

// FindCity returns the longest city name present in text.
func (l *Lexicon) FindCity(text string) (City, string, bool) {
	for _, c := range l.cities {
		if m, ok := matchFold(text, c.Name); ok {
			return c, m, true
		}
	}
	return City{}, "", false
}

// FindGovernorate returns the longest governorate name present in text.
func (l *Lexicon) FindGovernorate(text string) (string, string, bool) {
	for _, g := range l.governorates {
		if m, ok := matchFold(text, g); ok {
			return g, m, true
		}
	}
	return "", "", false
}

// FindCategoryKeyword scans the per-category keyword lists in declaration
// order and returns the first category with a keyword present in text,
// preferring the longest keyword within that category's list.
func (l *Lexicon) FindCategoryKeyword(text string) (string, string, bool) {
	for _, ck := range l.categoryKeywords {
		for _, kw := range ck.Keywords {
			if m, ok := matchFold(text, kw); ok {
				return ck.Category, m, true
			}
		}
	}
	return "", "", false
}

// Band returns the price band for a category and qualitative tier.
func (l *Lexicon) Band(category string, tier core.PriceIntent) (PriceBand, bool) {
	tiers, ok := l.priceBands[category]
	if !ok {
		return PriceBand{}, false
	}
	band, ok := tiers[tier]
	return band, ok
}
