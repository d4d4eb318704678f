// Package catalog holds the pure sort and filter steps applied to catalog
// reads. The database returns unordered result sets; ordering happens here.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
)

// SortCategoriesByName orders categories alphabetically, case-insensitive.
func SortCategoriesByName(categories []models.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
}

// SortProductsByName orders products alphabetically, case-insensitive.
func SortProductsByName(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
}

// SortCombosByName orders combos alphabetically, case-insensitive.
func SortCombosByName(combos []models.Combo) {
	sort.SliceStable(combos, func(i, j int) bool {
		return strings.ToLower(combos[i].Name) < strings.ToLower(combos[j].Name)
	})
}

// ValidCombos keeps combos whose validity window contains now. A zero
// valid-from or valid-until bound is treated as open.
func ValidCombos(combos []models.Combo, now time.Time) []models.Combo {
	valid := make([]models.Combo, 0, len(combos))
	for _, combo := range combos {
		if !combo.ValidFrom.IsZero() && now.Before(combo.ValidFrom) {
			continue
		}
		if !combo.ValidUntil.IsZero() && now.After(combo.ValidUntil) {
			continue
		}
		valid = append(valid, combo)
	}
	return valid
}
