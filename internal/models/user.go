package models

import "github.com/google/uuid"

// User represents an authenticated customer.
type User struct {
	BaseModel
	Email        string        `gorm:"uniqueIndex" json:"email"`
	DisplayName  string        `json:"display_name"`
	Phone        string        `json:"phone"`
	PasswordHash string        `json:"-"`
	Addresses    []UserAddress `json:"addresses,omitempty"`
	Orders       []Order       `json:"orders,omitempty"`
}

// UserAddress is a saved delivery address.
type UserAddress struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Label       string    `json:"label"`
	AddressLine string    `json:"address_line"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	IsDefault   bool      `json:"is_default"`
}
