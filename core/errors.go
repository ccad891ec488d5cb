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

import "errors"

// Domain validation errors
var (
	// ErrInvalidWish indicates a SearchWish failed validation.
	ErrInvalidWish = errors.New("invalid search wish")

	// ErrEmptyWishQuery indicates a wish has an empty query string.
	ErrEmptyWishQuery = errors.New("wish query must not be empty")

	// ErrInvalidIntent indicates an unrecognized Intent value.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrInvalidPriceIntent indicates an unrecognized PriceIntent value.
	ErrInvalidPriceIntent = errors.New("invalid price intent")

	// ErrInvalidConditionHint indicates an unrecognized ConditionHint value.
	ErrInvalidConditionHint = errors.New("invalid condition hint")

	// ErrInvalidSaleType indicates an unrecognized SaleType value.
	ErrInvalidSaleType = errors.New("invalid sale type")
)
