package feedback

import (
	"strings"

	"github.com/mataa-market/mataa/catalog"
	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/lexicon"
)

// SaveWishQuery is the sentinel query value of the final empty-result
// suggestion. It means "offer to save this search as a monitored wish" and
// must never be executed as a literal search.
const SaveWishQuery = "__SAVE_WISH__"

const maxSuggestions = 5

// Suggestion is one recovery action shown when a search finds nothing.
type Suggestion struct {
	Label string
	Query string
}

// EmptySuggestions proposes up to five ways out of an empty result page:
// broaden to the whole category, drop the location, drop the price, try an
// alternative wording, or save the search as a wish. The wish sentinel is
// always last.
func EmptySuggestions(q *core.ParsedQuery, categories catalog.CategoryProvider, lex *lexicon.Lexicon) []Suggestion {
	var suggestions []Suggestion

	if q.PrimaryCategory != "" {
		label := q.PrimaryCategory
		if categories != nil {
			if category, ok := categories.CategoryByID(q.PrimaryCategory); ok {
				label = category.Name
			}
		}
		suggestions = append(suggestions, Suggestion{
			Label: "شوف كل " + label,
			Query: label,
		})
	}

	if withoutLocation, ok := dropLocation(q); ok {
		suggestions = append(suggestions, Suggestion{
			Label: "دور في كل المحافظات",
			Query: withoutLocation,
		})
	}

	if withoutPrice, ok := dropPrice(q, lex); ok {
		suggestions = append(suggestions, Suggestion{
			Label: "دور من غير حد للسعر",
			Query: withoutPrice,
		})
	}

	for i, alt := range q.AlternativeQueries {
		if i == 2 {
			break
		}
		suggestions = append(suggestions, Suggestion{Label: "جرب: " + alt, Query: alt})
	}

	if len(suggestions) > maxSuggestions-1 {
		suggestions = suggestions[:maxSuggestions-1]
	}
	suggestions = append(suggestions, Suggestion{
		Label: "اعمل تنبيه لما يظهر حاجة جديدة",
		Query: SaveWishQuery,
	})
	return suggestions
}

// dropLocation strips the governorate and city tokens from the original
// query text.
func dropLocation(q *core.ParsedQuery) (string, bool) {
	if q.Governorate == "" && q.City == "" {
		return "", false
	}
	text := q.OriginalQuery
	if q.City != "" {
		text = strings.ReplaceAll(text, q.City, " ")
	}
	if q.Governorate != "" {
		text = strings.ReplaceAll(text, q.Governorate, " ")
	}
	text = strings.Join(strings.Fields(text), " ")
	if text == "" || text == q.OriginalQuery {
		return "", false
	}
	return text, true
}

// dropPrice strips the matched price phrase (exact or qualitative) from
// the original query text.
func dropPrice(q *core.ParsedQuery, lex *lexicon.Lexicon) (string, bool) {
	if lex == nil || q.PriceIntent == core.PriceAny {
		return "", false
	}
	text := q.OriginalQuery
	for _, ep := range lex.ExactPricePatterns() {
		if m := ep.Pattern.FindString(text); m != "" {
			text = strings.Replace(text, m, " ", 1)
			break
		}
	}
	if _, m, ok := lex.MatchPriceTier(text); ok {
		text = strings.Replace(text, m, " ", 1)
	}
	text = strings.Join(strings.Fields(text), " ")
	if text == "" || text == q.OriginalQuery {
		return "", false
	}
	return text, true
}
