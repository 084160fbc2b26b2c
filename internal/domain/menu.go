package domain

import "github.com/shopspring/decimal"

// MenuItem is one dish on the menu. Items are read-only after seeding;
// carts and orders keep their own snapshots of the fields they need.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size,omitempty"`
	Ingredients string          `json:"ingredients,omitempty"`
	Image       string          `json:"image,omitempty"`
}
