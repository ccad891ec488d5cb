package core

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Intent is the user's inferred purpose for a search.
type Intent string

const (
	IntentBuy      Intent = "buy"
	IntentExchange Intent = "exchange"
	IntentBrowse   Intent = "browse"
	IntentCompare  Intent = "compare"
	IntentGift     Intent = "gift"
	IntentUrgent   Intent = "urgent"
	IntentBargain  Intent = "bargain"
)

// PriceIntent is the qualitative price tier the user asked for, or "exact"
// when a numeric price phrase was found.
type PriceIntent string

const (
	PriceBudget  PriceIntent = "budget"
	PriceMid     PriceIntent = "mid"
	PricePremium PriceIntent = "premium"
	PriceAny     PriceIntent = "any"
	PriceExact   PriceIntent = "exact"
)

// ConditionHint is the inferred desired item condition.
type ConditionHint string

const (
	ConditionNew     ConditionHint = "new"
	ConditionLikeNew ConditionHint = "like_new"
	ConditionGood    ConditionHint = "good"
	ConditionAny     ConditionHint = "any"
)

// SaleType is the kind of transaction the user is after.
type SaleType string

const (
	SaleCash     SaleType = "cash"
	SaleAuction  SaleType = "auction"
	SaleExchange SaleType = "exchange"
)

// ParsedQuery is the structured interpretation of a single free-text search
// phrase. Every set field was derived from a substring of the original query;
// CleanQuery holds whatever text no extraction stage consumed.
type ParsedQuery struct {
	OriginalQuery string        `json:"originalQuery"`
	CleanQuery    string        `json:"cleanQuery"`
	Intent        Intent        `json:"intent"`
	PriceIntent   PriceIntent   `json:"priceIntent"`
	PriceMin      *int          `json:"priceMin,omitempty"`
	PriceMax      *int          `json:"priceMax,omitempty"`
	ConditionHint ConditionHint `json:"conditionHint"`

	Categories      []string `json:"categories,omitempty"`
	PrimaryCategory string   `json:"primaryCategory,omitempty"`
	Subcategory     string   `json:"subcategory,omitempty"`

	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Governorate string `json:"governorate,omitempty"`
	City        string `json:"city,omitempty"`
	Year        *int   `json:"year,omitempty"`

	ExtractedFields map[string]string `json:"extractedFields,omitempty"`
	SaleType        SaleType          `json:"saleType,omitempty"`

	Confidence         float64  `json:"confidence"`
	Interpretation     string   `json:"interpretation,omitempty"`
	AlternativeQueries []string `json:"alternativeQueries,omitempty"`
	GiftTarget         string   `json:"giftTarget,omitempty"`
}

// NewParsedQuery returns a default-initialized result for the given input:
// browse intent, no price preference, no condition preference.
func NewParsedQuery(original string) *ParsedQuery {
	return &ParsedQuery{
		OriginalQuery:   original,
		Intent:          IntentBrowse,
		PriceIntent:     PriceAny,
		ConditionHint:   ConditionAny,
		ExtractedFields: make(map[string]string),
	}
}

// AddCategory appends a category, keeping set semantics while preserving
// insertion order for UI listing.
func (q *ParsedQuery) AddCategory(category string) {
	for _, c := range q.Categories {
		if c == category {
			return
		}
	}
	q.Categories = append(q.Categories, category)
}

// HasCategory reports whether the category was already added.
func (q *ParsedQuery) HasCategory(category string) bool {
	for _, c := range q.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// WishID uniquely identifies a saved search wish.
type WishID string

// NewWishID generates a deterministic ID from the wish query and creation
// time using BLAKE2b hashing, so identical content produces identical IDs.
func NewWishID(query string, createdAt time.Time) WishID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(query))
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(createdAt.UnixNano()))
	h.Write(ts[:])
	return WishID(hex.EncodeToString(h.Sum(nil)))
}

// WishFilters are the listing filters a wish is monitored with. Unset
// fields are defaulted from the wish's parsed query at creation time.
type WishFilters struct {
	Category    string        `json:"category,omitempty"`
	SaleType    SaleType      `json:"saleType,omitempty"`
	PriceMin    *int          `json:"priceMin,omitempty"`
	PriceMax    *int          `json:"priceMax,omitempty"`
	Governorate string        `json:"governorate,omitempty"`
	Condition   ConditionHint `json:"condition,omitempty"`
}

// SearchWish is a persisted, monitored search. The parsed query is a
// snapshot taken at creation time and is never re-derived.
type SearchWish struct {
	ID            WishID      `json:"id"`
	Query         string      `json:"query"`
	Parsed        ParsedQuery `json:"parsedQuery"`
	Filters       WishFilters `json:"filters"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastCheckedAt time.Time   `json:"lastCheckedAt"`
	MatchCount    int         `json:"matchCount"`
	NewMatchCount int         `json:"newMatchCount"`
	IsActive      bool        `json:"isActive"`
	DisplayText   string      `json:"displayText,omitempty"`
}
