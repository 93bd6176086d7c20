package constants

import (
	"strings"
)

type Category string

// Closed category set used for classification. The AI tier is constrained to
// these labels; anything else collapses to Others.
const (
	FoodAndBeverage Category = "Food & Beverage"
	Utilities       Category = "Utilities"
	Transportation  Category = "Transportation"
	OfficeSupplies  Category = "Office Supplies"
	Others          Category = "Others"
)

// allCategories is in classification priority order; the keyword tier breaks
// score ties by this order.
var allCategories = []Category{
	FoodAndBeverage,
	Utilities,
	Transportation,
	OfficeSupplies,
	Others,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Scorable returns the categories the keyword tier scores, i.e. everything
// except Others.
func Scorable() []Category {
	return allCategories[: len(allCategories)-1 : len(allCategories)-1]
}

// Canonicalize maps a free-form model answer onto the closed set. Lenient on
// purpose: "food & beverage expenses" still resolves to Food & Beverage.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Others, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if strings.Contains(normalized, strings.ToLower(string(cat))) {
			return cat, true
		}
	}

	return Others, false
}
