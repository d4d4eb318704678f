package catalog

import (
	"testing"
	"time"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
)

func TestSortProductsByName(t *testing.T) {
	products := []models.Product{
		{Name: "toilet cleaner"},
		{Name: "Dish Wash"},
		{Name: "Bleach"},
	}
	SortProductsByName(products)

	want := []string{"Bleach", "Dish Wash", "toilet cleaner"}
	for i, name := range want {
		if products[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, products[i].Name, name)
		}
	}
}

func TestValidCombosWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	combos := []models.Combo{
		{Name: "current", ValidFrom: now.AddDate(0, -1, 0), ValidUntil: now.AddDate(0, 1, 0)},
		{Name: "expired", ValidFrom: now.AddDate(0, -2, 0), ValidUntil: now.AddDate(0, -1, 0)},
		{Name: "upcoming", ValidFrom: now.AddDate(0, 1, 0), ValidUntil: now.AddDate(0, 2, 0)},
		{Name: "open-ended"},
	}

	valid := ValidCombos(combos, now)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid combos, got %d", len(valid))
	}
	if valid[0].Name != "current" || valid[1].Name != "open-ended" {
		t.Fatalf("unexpected combos: %q, %q", valid[0].Name, valid[1].Name)
	}
}
