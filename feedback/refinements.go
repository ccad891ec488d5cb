package feedback

import (
	"fmt"

	"github.com/mataa-market/mataa/catalog"
	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/lexicon"
)

const maxRefinements = 8

// RefinementKind classifies a refinement chip.
type RefinementKind string

const (
	RefineCategory  RefinementKind = "category"
	RefineLocation  RefinementKind = "location"
	RefinePrice     RefinementKind = "price"
	RefineSaleType  RefinementKind = "sale_type"
	RefineCondition RefinementKind = "condition"
)

// Refinement is one filter chip offered under the search box.
type Refinement struct {
	Kind  RefinementKind
	Label string
	Value string
}

// Refinements offers up to eight chips narrowing the facets the query left
// open.
func Refinements(q *core.ParsedQuery, provider catalog.Provider, lex *lexicon.Lexicon) []Refinement {
	var chips []Refinement

	if q.PrimaryCategory == "" && len(q.Categories) > 0 {
		for i, id := range q.Categories {
			if i == 3 {
				break
			}
			label := id
			if provider != nil {
				if category, ok := provider.CategoryByID(id); ok {
					label = category.Name
				}
			}
			chips = append(chips, Refinement{Kind: RefineCategory, Label: label, Value: id})
		}
	}

	if q.Governorate == "" && provider != nil {
		governorates := provider.Governorates()
		for i, gov := range governorates {
			if i == 3 {
				break
			}
			chips = append(chips, Refinement{Kind: RefineLocation, Label: gov, Value: gov})
		}
	}

	if q.PriceIntent == core.PriceAny && q.PrimaryCategory != "" && lex != nil {
		if band, ok := lex.Band(q.PrimaryCategory, core.PriceBudget); ok {
			chips = append(chips, Refinement{
				Kind:  RefinePrice,
				Label: fmt.Sprintf("اقتصادي - تحت %d جنيه", band.Max),
				Value: string(core.PriceBudget),
			})
		}
		if band, ok := lex.Band(q.PrimaryCategory, core.PriceMid); ok {
			chips = append(chips, Refinement{
				Kind:  RefinePrice,
				Label: fmt.Sprintf("متوسط - من %d لـ %d جنيه", band.Min, band.Max),
				Value: string(core.PriceMid),
			})
		}
	}

	if q.SaleType == "" {
		chips = append(chips,
			Refinement{Kind: RefineSaleType, Label: "بدل", Value: string(core.SaleExchange)},
			Refinement{Kind: RefineSaleType, Label: "مزاد", Value: string(core.SaleAuction)},
		)
	}

	if q.ConditionHint == core.ConditionAny {
		chips = append(chips,
			Refinement{Kind: RefineCondition, Label: "جديد", Value: string(core.ConditionNew)},
			Refinement{Kind: RefineCondition, Label: "مستعمل", Value: string(core.ConditionGood)},
		)
	}

	if len(chips) > maxRefinements {
		chips = chips[:maxRefinements]
	}
	return chips
}
