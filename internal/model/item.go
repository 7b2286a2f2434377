package model

import "time"

type Item struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	CategoryID    *int64    `json:"category_id"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	ExpiryDate    *string   `json:"expiry_date"`
	LowStockLevel float64   `json:"low_stock_level"`
	LocationID    *int64    `json:"location_id"`
	Barcode       *string   `json:"barcode"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined display names, present on list and derived views.
	CategoryName *string `json:"category_name,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
}

type Location struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
