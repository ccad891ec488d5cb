package feedback

import (
	"strings"

	"github.com/mataa-market/mataa/catalog"
	"github.com/mataa-market/mataa/core"
)

const maxAlternatives = 4

// Alternatives suggests up to four reworded queries: sibling brands in the
// same category, the bare category as a broader search, and the
// neighboring-governorate swap for Cairo queries.
func Alternatives(q *core.ParsedQuery, categories catalog.CategoryProvider) []string {
	var alternatives []string

	if q.Brand != "" && q.PrimaryCategory != "" && categories != nil {
		if category, ok := categories.CategoryByID(q.PrimaryCategory); ok {
			alternatives = append(alternatives, siblingBrands(q, category)...)
		}
	}

	if q.PrimaryCategory != "" && categories != nil {
		if category, ok := categories.CategoryByID(q.PrimaryCategory); ok {
			alternatives = append(alternatives, category.Name)
		}
	}

	if q.Governorate == "القاهرة" {
		swapped := strings.ReplaceAll(q.OriginalQuery, "القاهرة", "الجيزة")
		if swapped != q.OriginalQuery {
			alternatives = append(alternatives, swapped)
		}
	}

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}

// siblingBrands lists up to three other brand labels from the category's
// brand field, skipping the chosen brand and the catch-all "other" value.
func siblingBrands(q *core.ParsedQuery, category catalog.Category) []string {
	field, ok := category.Field("brand")
	if !ok {
		return nil
	}

	var siblings []string
	for _, opt := range field.Options {
		if opt.Value == q.Brand || opt.Value == "other" {
			continue
		}
		label := opt.Label
		if q.Model != "" {
			label += " " + q.Model
		}
		siblings = append(siblings, label)
		if len(siblings) == 3 {
			break
		}
	}
	return siblings
}
