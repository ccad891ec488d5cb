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


package core

import "fmt"

// Valid reports whether the intent is one of the recognized values.
func (i Intent) Valid() bool {
	switch i {
	case IntentBuy, IntentExchange, IntentBrowse, IntentCompare, IntentGift, IntentUrgent, IntentBargain:
		return true
	}
	return false
}

// Valid reports whether the price intent is one of the recognized values.
func (p PriceIntent) Valid() bool {
	switch p {
	case PriceBudget, PriceMid, PricePremium, PriceAny, PriceExact:
		return true
	}
	return false
}

// Valid reports whether the condition hint is one of the recognized values.
func (c ConditionHint) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionAny:
		return true
	}
	return false
}

// Valid reports whether the sale type is one of the recognized values.
// The empty string is valid: sale type is an optional facet.
func (s SaleType) Valid() bool {
	switch s {
	case "", SaleCash, SaleAuction, SaleExchange:
		return true
	}
	return false
}

// ValidateWish validates a SearchWish according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Enum fields of the parsed snapshot must hold recognized values
//
// NOT validated (populated by the store and the matching job):
//   - ID (assigned at creation)
//   - MatchCount / NewMatchCount
//   - DisplayText (composed lazily when unset)
func ValidateWish(wish *SearchWish) error {
	if wish == nil {
		return fmt.Errorf("%w: wish is nil", ErrInvalidWish)
	}

	if wish.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWish, ErrEmptyWishQuery)
	}

	if err := ValidateParsedQuery(&wish.Parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWish, err)
	}

	if !wish.Filters.SaleType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidWish, ErrInvalidSaleType, wish.Filters.SaleType)
	}

	return nil
}

// ValidateParsedQuery validates the enum fields of a ParsedQuery.
func ValidateParsedQuery(q *ParsedQuery) error {
	if q == nil {
		return fmt.Errorf("parsed query is nil")
	}
	if !q.Intent.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidIntent, q.Intent)
	}
	if !q.PriceIntent.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriceIntent, q.PriceIntent)
	}
	if !q.ConditionHint.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidConditionHint, q.ConditionHint)
	}
	if !q.SaleType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSaleType, q.SaleType)
	}
	return nil
}
