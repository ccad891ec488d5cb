package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/lexicon"
)

// Structural numeric patterns. Unlike the lexicon's vocabulary tables
// these encode units and formats, not dialect, so they live with the
// stages that consume them.
var (
	karatPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:عيار|قيراط)\s*(24|21|18|14|925|900)`),
		regexp.MustCompile(`(24|21|18|14)\s*(?:عيار|قيراط)`),
		regexp.MustCompile(`فضة\s*(925|900)`),
	}
	yearPattern    = regexp.MustCompile(`199\d|20[0-2]\d`)
	roomsPattern   = regexp.MustCompile(`(\d+)\s*غرف(?:ة)?`)
	areaPattern    = regexp.MustCompile(`(\d+)\s*(?:متر|م²|م2)`)
	storagePattern = regexp.MustCompile(`(?i)(\d+)\s*(جيجا|غيغا|gb|تيرا|tb)`)
)

func (p *Parser) stageIntent(st *state) string {
	intent, matched, ok := p.lex.MatchIntent(st.remaining)
	if !ok {
		return ""
	}
	st.query.Intent = intent
	if intent == core.IntentExchange {
		st.query.SaleType = core.SaleExchange
	}
	st.strip(matched)
	return matched
}

func (p *Parser) stageGiftTarget(st *state) string {
	if st.query.Intent != core.IntentGift {
		return ""
	}
	target, matched, ok := p.lex.FindGiftTarget(st.remaining)
	if !ok {
		return ""
	}
	st.query.GiftTarget = target.Phrase
	for _, c := range target.Categories {
		st.query.AddCategory(c)
	}
	if len(target.Categories) > 0 {
		st.query.PrimaryCategory = target.Categories[0]
	}
	st.strip(matched)
	return matched
}

func (p *Parser) stagePrice(st *state) string {
	var matched string

	if tier, m, ok := p.lex.MatchPriceTier(st.remaining); ok {
		st.query.PriceIntent = tier
		st.strip(m)
		matched = m
	}

	// Exact numeric phrases override any qualitative tier.
	for _, ep := range p.lex.ExactPricePatterns() {
		sub := ep.Pattern.FindStringSubmatch(st.remaining)
		if sub == nil {
			continue
		}
		switch ep.Multiplier {
		case lexicon.MultiplierRange:
			low, err1 := strconv.Atoi(sub[1])
			high, err2 := strconv.Atoi(sub[2])
			if err1 != nil || err2 != nil {
				continue
			}
			st.query.PriceMin = &low
			st.query.PriceMax = &high
		case lexicon.MultiplierUnder:
			amount, err := strconv.Atoi(sub[1])
			if err != nil {
				continue
			}
			st.query.PriceMax = &amount
		case lexicon.MultiplierOver:
			amount, err := strconv.Atoi(sub[1])
			if err != nil {
				continue
			}
			st.query.PriceMin = &amount
		case lexicon.MultiplierAround:
			amount, err := strconv.Atoi(sub[1])
			if err != nil {
				continue
			}
			low := int(math.Round(0.7 * float64(amount)))
			high := int(math.Round(1.3 * float64(amount)))
			st.query.PriceMin = &low
			st.query.PriceMax = &high
		}
		st.query.PriceIntent = core.PriceExact
		st.strip(sub[0])
		if matched != "" {
			matched += " "
		}
		matched += sub[0]
		break
	}

	return matched
}

// stageCondition is the one stage that does not consume its match:
// condition words often carry category context later stages still need.
func (p *Parser) stageCondition(st *state) string {
	hint, matched, ok := p.lex.MatchCondition(st.remaining)
	if !ok {
		return ""
	}
	st.query.ConditionHint = hint
	return matched
}

func (p *Parser) stageKarat(st *state) string {
	for _, pattern := range karatPatterns {
		sub := pattern.FindStringSubmatch(st.remaining)
		if sub == nil {
			continue
		}
		st.query.ExtractedFields["karat"] = sub[1]
		if st.query.PrimaryCategory == "" {
			st.query.PrimaryCategory = "gold"
		}
		st.query.AddCategory("gold")
		st.strip(sub[0])
		return sub[0]
	}
	return ""
}

func (p *Parser) stageYear(st *state) string {
	for _, loc := range yearPattern.FindAllStringIndex(st.remaining, -1) {
		// Reject matches embedded in a longer digit run.
		if loc[0] > 0 && isDigit(st.remaining[loc[0]-1]) {
			continue
		}
		if loc[1] < len(st.remaining) && isDigit(st.remaining[loc[1]]) {
			continue
		}
		matched := st.remaining[loc[0]:loc[1]]
		year, err := strconv.Atoi(matched)
		if err != nil {
			continue
		}
		st.query.Year = &year
		st.strip(matched)
		return matched
	}
	return ""
}

func (p *Parser) stageRooms(st *state) string {
	sub := roomsPattern.FindStringSubmatch(st.remaining)
	if sub == nil {
		return ""
	}
	st.query.ExtractedFields["rooms"] = sub[1]
	if st.query.PrimaryCategory == "" {
		st.query.PrimaryCategory = "real_estate"
	}
	st.query.AddCategory("real_estate")
	st.strip(sub[0])
	return sub[0]
}

func (p *Parser) stageArea(st *state) string {
	sub := areaPattern.FindStringSubmatch(st.remaining)
	if sub == nil {
		return ""
	}
	st.query.ExtractedFields["area"] = sub[1]
	if st.query.PrimaryCategory == "" {
		st.query.PrimaryCategory = "real_estate"
	}
	st.query.AddCategory("real_estate")
	st.strip(sub[0])
	return sub[0]
}

func (p *Parser) stageStorage(st *state) string {
	sub := storagePattern.FindStringSubmatch(st.remaining)
	if sub == nil {
		return ""
	}
	amount, err := strconv.Atoi(sub[1])
	if err != nil {
		return ""
	}
	unit := strings.ToLower(sub[2])
	if unit == "تيرا" || unit == "tb" {
		amount *= 1024
	}
	st.query.ExtractedFields["storage"] = strconv.Itoa(amount)
	if st.query.PrimaryCategory == "" {
		st.query.PrimaryCategory = "phones"
	}
	st.query.AddCategory("phones")
	st.strip(sub[0])
	return sub[0]
}

func (p *Parser) stageBrand(st *state) string {
	brand, matched, ok := p.lex.FindBrand(st.remaining)
	if !ok {
		return ""
	}
	st.query.Brand = brand.Brand
	if brand.Model != "" && st.query.Model == "" {
		st.query.Model = brand.Model
	}
	if st.query.PrimaryCategory == "" {
		st.query.PrimaryCategory = brand.Category
	}
	st.query.AddCategory(brand.Category)
	st.strip(matched)
	return matched
}

func (p *Parser) stageLocation(st *state) string {
	if city, matched, ok := p.lex.FindCity(st.remaining); ok {
		st.query.City = city.Name
		st.query.Governorate = city.Governorate
		st.strip(matched)
		return matched
	}
	if gov, matched, ok := p.lex.FindGovernorate(st.remaining); ok {
		st.query.Governorate = gov
		st.strip(matched)
		return matched
	}
	return ""
}

func (p *Parser) stageCategory(st *state) string {
	if entity, matched, ok := p.lex.FindEntity(st.remaining); ok {
		if st.query.PrimaryCategory == "" {
			st.query.PrimaryCategory = entity.Category
		}
		st.query.AddCategory(entity.Category)
		if entity.Subcategory != "" && st.query.Subcategory == "" {
			st.query.Subcategory = entity.Subcategory
		}
		for key, value := range entity.Fields {
			if _, exists := st.query.ExtractedFields[key]; !exists {
				st.query.ExtractedFields[key] = value
			}
		}
		st.strip(matched)
		return matched
	}

	if st.query.PrimaryCategory != "" {
		return ""
	}
	category, matched, ok := p.lex.FindCategoryKeyword(st.remaining)
	if !ok {
		return ""
	}
	st.query.PrimaryCategory = category
	st.query.AddCategory(category)
	st.strip(matched)
	return matched
}

// stagePriceBand materializes a qualitative tier into numeric bounds once
// the category is known. Exact extraction always wins.
func (p *Parser) stagePriceBand(st *state) string {
	q := st.query
	switch q.PriceIntent {
	case core.PriceBudget, core.PriceMid, core.PricePremium:
	default:
		return ""
	}
	if q.PrimaryCategory == "" || q.PriceMin != nil || q.PriceMax != nil {
		return ""
	}
	band, ok := p.lex.Band(q.PrimaryCategory, q.PriceIntent)
	if !ok {
		return ""
	}
	low, high := band.Min, band.Max
	q.PriceMin = &low
	q.PriceMax = &high
	return ""
}

func (p *Parser) stageCleanup(st *state) string {
	clean := strings.Join(strings.Fields(st.remaining), " ")
	clean = strings.Trim(clean, " \t\n.,!?;:،؛؟-—_()[]{}«»\"'")
	st.remaining = clean
	st.query.CleanQuery = clean
	return ""
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
