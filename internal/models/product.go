package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	SalePrice    *float64       `json:"sale_price"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	Category     *Category      `json:"category,omitempty"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	SKU          string         `json:"sku"`
	Stock        int            `json:"stock"`
	Weight       string         `json:"weight"`
	Dimensions   string         `json:"dimensions"`
	Ingredients  string         `json:"ingredients"`
	Instructions string         `json:"instructions"`
	IsActive     bool           `json:"is_active"`
}

// EffectivePrice returns the sale price when one is set, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}
