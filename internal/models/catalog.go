package models

import (
	"time"

	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

// Combo bundles several products at a single price inside a validity window.
type Combo struct {
	BaseModel
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"image_url"`
	ComboPrice    float64        `json:"combo_price"`
	OriginalPrice float64        `json:"original_price"`
	Savings       float64        `json:"savings"`
	ProductIDs    pq.StringArray `gorm:"type:text[]" json:"product_ids"`
	IsActive      bool           `json:"is_active"`
	IsFeatured    bool           `json:"is_featured"`
	ValidFrom     time.Time      `json:"valid_from"`
	ValidUntil    time.Time      `json:"valid_until"`
}
