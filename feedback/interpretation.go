package feedback

import (
	"fmt"
	"strings"

	"github.com/mataa-market/mataa/catalog"
	"github.com/mataa-market/mataa/core"
)

// fragmentSeparator joins interpretation fragments.
const fragmentSeparator = " — "

var intentPhrases = map[core.Intent]string{
	core.IntentBuy:      "عايز تشتري",
	core.IntentExchange: "عايز تبدل",
	core.IntentBrowse:   "بتدور على",
	core.IntentCompare:  "بتقارن بين",
	core.IntentGift:     "بتدور على هدية",
	core.IntentUrgent:   "محتاج بسرعة",
	core.IntentBargain:  "بتدور على ارخص سعر لـ",
}

var conditionPhrases = map[core.ConditionHint]string{
	core.ConditionNew:     "جديد",
	core.ConditionLikeNew: "زي الجديد",
	core.ConditionGood:    "حالة جيدة",
	core.ConditionAny:     "",
}

var tierPhrases = map[core.PriceIntent]string{
	core.PriceBudget:  "بسعر اقتصادي",
	core.PriceMid:     "بسعر متوسط",
	core.PricePremium: "من الفئة الفخمة",
}

// Interpretation renders the parsed query back into a single Arabic
// summary line. Fragments appear in a fixed order; empty fragments are
// filtered before joining.
func Interpretation(q *core.ParsedQuery, categories catalog.CategoryProvider) string {
	fragments := []string{
		intentFragment(q),
		categoryFragment(q, categories),
		brandFragment(q, categories),
		conditionPhrases[q.ConditionHint],
		priceFragment(q),
		locationFragment(q),
	}
	fragments = append(fragments, fieldFragments(q)...)

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, fragmentSeparator)
}

func intentFragment(q *core.ParsedQuery) string {
	phrase := intentPhrases[q.Intent]
	if q.Intent == core.IntentGift && q.GiftTarget != "" {
		phrase += " لـ" + q.GiftTarget
	}
	return phrase
}

func categoryFragment(q *core.ParsedQuery, categories catalog.CategoryProvider) string {
	if q.PrimaryCategory == "" || categories == nil {
		return ""
	}
	category, ok := categories.CategoryByID(q.PrimaryCategory)
	if !ok {
		return q.PrimaryCategory
	}
	return strings.TrimSpace(category.Icon + " " + category.Name)
}

func brandFragment(q *core.ParsedQuery, categories catalog.CategoryProvider) string {
	if q.Brand == "" {
		return ""
	}
	label := q.Brand
	if categories != nil && q.PrimaryCategory != "" {
		if category, ok := categories.CategoryByID(q.PrimaryCategory); ok {
			label = category.OptionLabel("brand", q.Brand)
		}
	}
	if q.Model != "" {
		label += " " + q.Model
	}
	return label
}

func priceFragment(q *core.ParsedQuery) string {
	switch {
	case q.PriceMin != nil && q.PriceMax != nil:
		return fmt.Sprintf("من %d لـ %d جنيه", *q.PriceMin, *q.PriceMax)
	case q.PriceMin != nil:
		return fmt.Sprintf("فوق %d جنيه", *q.PriceMin)
	case q.PriceMax != nil:
		return fmt.Sprintf("تحت %d جنيه", *q.PriceMax)
	default:
		return tierPhrases[q.PriceIntent]
	}
}

func locationFragment(q *core.ParsedQuery) string {
	if q.City != "" {
		return "في " + q.City
	}
	if q.Governorate != "" {
		return "في " + q.Governorate
	}
	return ""
}

func fieldFragments(q *core.ParsedQuery) []string {
	var fragments []string
	if rooms, ok := q.ExtractedFields["rooms"]; ok {
		fragments = append(fragments, rooms+" غرف")
	}
	if storage, ok := q.ExtractedFields["storage"]; ok {
		fragments = append(fragments, storage+" جيجا")
	}
	if q.Year != nil {
		fragments = append(fragments, fmt.Sprintf("موديل %d", *q.Year))
	}
	return fragments
}
