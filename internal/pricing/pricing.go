// Package pricing converts cart lines into a fully priced order breakdown.
// The bulk tier applies per line and stacks on top of a product's sale price.
package pricing

import "github.com/smartcleaners/SMART-CLEANERS/internal/models"

// Bulk tier thresholds and rates.
const (
	TierMediumQty  = 10
	TierLargeQty   = 50
	TierMediumRate = 0.15
	TierLargeRate  = 0.25
)

// TierRate returns the bulk discount rate for a line quantity.
func TierRate(quantity int) float64 {
	switch {
	case quantity >= TierLargeQty:
		return TierLargeRate
	case quantity >= TierMediumQty:
		return TierMediumRate
	default:
		return 0
	}
}

// TierLabel names the applied tier, empty when no tier applies.
func TierLabel(quantity int) string {
	switch {
	case quantity >= TierLargeQty:
		return "25%"
	case quantity >= TierMediumQty:
		return "15%"
	default:
		return ""
	}
}

// Line is the priced form of one cart entry.
type Line struct {
	Product             models.Product
	Quantity            int
	UnitPrice           float64
	BulkDiscountPerUnit float64
	FinalUnitPrice      float64
	LineTotal           float64
	TierApplied         string
}

// Breakdown aggregates all priced lines of an order.
type Breakdown struct {
	Lines             []Line  `json:"lines"`
	Subtotal          float64 `json:"subtotal"`
	BulkDiscountTotal float64 `json:"bulk_discount_total"`
	ShippingCost      float64 `json:"shipping_cost"`
	FinalTotal        float64 `json:"final_total"`
	ItemCount         int     `json:"item_count"`
}

// PriceLine prices a single product line. The unit price is the product's
// effective price (sale price when set), discounted by the quantity tier.
func PriceLine(product models.Product, quantity int) Line {
	unit := product.EffectivePrice()
	rate := TierRate(quantity)
	discountTotal := unit * float64(quantity) * rate
	discountPerUnit := discountTotal / float64(quantity)

	return Line{
		Product:             product,
		Quantity:            quantity,
		UnitPrice:           unit,
		BulkDiscountPerUnit: discountPerUnit,
		FinalUnitPrice:      unit - discountPerUnit,
		LineTotal:           (unit - discountPerUnit) * float64(quantity),
		TierApplied:         TierLabel(quantity),
	}
}

// PriceCart prices every cart item and aggregates the order totals.
// Lines with a non-positive quantity are excluded.
func PriceCart(items []models.CartItem) Breakdown {
	var b Breakdown
	for _, item := range items {
		if item.Quantity <= 0 || item.Product == nil {
			continue
		}
		line := PriceLine(*item.Product, item.Quantity)
		b.Lines = append(b.Lines, line)
		b.Subtotal += line.UnitPrice * float64(line.Quantity)
		b.BulkDiscountTotal += line.BulkDiscountPerUnit * float64(line.Quantity)
		b.ItemCount += line.Quantity
	}
	b.FinalTotal = b.Subtotal - b.BulkDiscountTotal
	return b
}
