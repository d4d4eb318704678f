package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Order lifecycle statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods and statuses.
const (
	PaymentMethodCash   = "cash_on_delivery"
	PaymentMethodOnline = "online_payment"

	PaymentStatusPending              = "pending"
	PaymentStatusAwaitingPayment      = "awaiting_payment"
	PaymentStatusAwaitingVerification = "awaiting_verification"
	PaymentStatusPaid                 = "paid"
)

// Order priority tiers derived from the order total.
const (
	OrderPriorityNormal = "normal"
	OrderPriorityMedium = "medium"
	OrderPriorityHigh   = "high"
)

type Order struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	OrderNumber   string    `gorm:"uniqueIndex" json:"order_number"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	PlacedAt      time.Time `json:"placed_at"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	AddressStreet  string   `json:"address_street"`
	AddressCity    string   `json:"address_city"`
	AddressState   string   `json:"address_state"`
	AddressPincode string   `json:"address_pincode"`
	FullAddress    string   `json:"full_address"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	MapLink        string   `json:"map_link"`

	Subtotal          float64 `json:"subtotal"`
	BulkDiscountTotal float64 `json:"bulk_discount_total"`
	ShippingCost      float64 `json:"shipping_cost"`
	FinalTotal        float64 `json:"final_total"`
	ItemCount         int     `json:"item_count"`

	IsNewCustomer        bool   `json:"is_new_customer"`
	RequiresVerification bool   `json:"requires_verification"`
	Priority             string `json:"priority"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem freezes the product details at order time.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID *uuid.UUID `gorm:"type:uuid" json:"product_id"`

	ProductName   string         `json:"product_name"`
	SKU           string         `json:"sku"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	OriginalPrice float64        `json:"original_price"`
	SalePrice     *float64       `json:"sale_price"`
	Weight        string         `json:"weight"`
	Dimensions    string         `json:"dimensions"`
	Description   string         `json:"description"`
	Ingredients   string         `json:"ingredients"`
	Instructions  string         `json:"instructions"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`

	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	BulkDiscountPerUnit float64 `json:"bulk_discount_per_unit"`
	FinalUnitPrice      float64 `json:"final_unit_price"`
	LineTotal           float64 `json:"line_total"`
	BulkTierApplied     string  `json:"bulk_tier_applied"`
}

var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition reports whether an order may move between the two statuses.
// Delivered and cancelled are terminal.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PriorityFor derives the handling tier from the order's final total.
func PriorityFor(finalTotal float64) string {
	switch {
	case finalTotal > 25000:
		return OrderPriorityHigh
	case finalTotal > 10000:
		return OrderPriorityMedium
	default:
		return OrderPriorityNormal
	}
}
