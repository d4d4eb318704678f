package pricing

import (
	"math"
	"testing"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTierRateBoundaries(t *testing.T) {
	cases := []struct {
		quantity int
		rate     float64
	}{
		{1, 0},
		{9, 0},
		{10, 0.15},
		{49, 0.15},
		{50, 0.25},
		{500, 0.25},
	}
	for _, tc := range cases {
		if got := TierRate(tc.quantity); got != tc.rate {
			t.Errorf("TierRate(%d) = %v, want %v", tc.quantity, got, tc.rate)
		}
	}
}

func TestPriceLineTotals(t *testing.T) {
	product := models.Product{Name: "Floor Cleaner", Price: 100}

	cases := []struct {
		quantity  int
		lineTotal float64
		tier      string
	}{
		{9, 900, ""},
		{10, 850, "15%"},
		{50, 3750, "25%"},
	}
	for _, tc := range cases {
		line := PriceLine(product, tc.quantity)
		if !almostEqual(line.LineTotal, tc.lineTotal) {
			t.Errorf("qty %d: line total = %v, want %v", tc.quantity, line.LineTotal, tc.lineTotal)
		}
		if line.TierApplied != tc.tier {
			t.Errorf("qty %d: tier = %q, want %q", tc.quantity, line.TierApplied, tc.tier)
		}
		if !almostEqual(line.LineTotal, line.FinalUnitPrice*float64(tc.quantity)) {
			t.Errorf("qty %d: lineTotal != finalUnitPrice*qty", tc.quantity)
		}
		if !almostEqual(line.FinalUnitPrice, line.UnitPrice-line.BulkDiscountPerUnit) {
			t.Errorf("qty %d: finalUnitPrice != unitPrice-discountPerUnit", tc.quantity)
		}
	}
}

func TestPriceLineStacksOnSalePrice(t *testing.T) {
	product := models.Product{Name: "Detergent", Price: 200, SalePrice: floatPtr(150)}
	line := PriceLine(product, 10)

	if line.UnitPrice != 150 {
		t.Fatalf("unit price = %v, want the sale price 150", line.UnitPrice)
	}
	// 150 * 10 * 0.85
	if !almostEqual(line.LineTotal, 1275) {
		t.Fatalf("line total = %v, want 1275", line.LineTotal)
	}
}

func TestPriceCartAggregates(t *testing.T) {
	soap := models.Product{Name: "Soap", Price: 40}
	phenyl := models.Product{Name: "Phenyl", Price: 100, SalePrice: floatPtr(80)}

	items := []models.CartItem{
		{Product: &soap, Quantity: 5},
		{Product: &phenyl, Quantity: 50},
	}

	b := PriceCart(items)

	if b.ItemCount != 55 {
		t.Errorf("item count = %d, want 55", b.ItemCount)
	}
	// 40*5 + 80*50
	if !almostEqual(b.Subtotal, 4200) {
		t.Errorf("subtotal = %v, want 4200", b.Subtotal)
	}
	// only the phenyl line is discounted: 80*50*0.25
	if !almostEqual(b.BulkDiscountTotal, 1000) {
		t.Errorf("bulk discount total = %v, want 1000", b.BulkDiscountTotal)
	}
	if !almostEqual(b.FinalTotal, 3200) {
		t.Errorf("final total = %v, want 3200", b.FinalTotal)
	}
	if b.ShippingCost != 0 {
		t.Errorf("shipping = %v, want 0", b.ShippingCost)
	}

	var sum float64
	for _, line := range b.Lines {
		sum += line.LineTotal
	}
	if !almostEqual(b.FinalTotal, sum) {
		t.Errorf("final total %v != sum of line totals %v", b.FinalTotal, sum)
	}
}

func TestPriceCartSkipsEmptyLines(t *testing.T) {
	soap := models.Product{Name: "Soap", Price: 40}
	items := []models.CartItem{
		{Product: &soap, Quantity: 0},
		{Product: nil, Quantity: 3},
	}

	b := PriceCart(items)
	if len(b.Lines) != 0 || b.ItemCount != 0 || b.FinalTotal != 0 {
		t.Fatalf("expected empty breakdown, got %+v", b)
	}
}
