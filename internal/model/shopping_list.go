package model

import "time"

// ShoppingListEntry is an item-to-buy. ItemName is denormalized so entries
// can exist for items not yet in the inventory.
type ShoppingListEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    *int64    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	VendorID  *int64    `json:"vendor_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VendorName *string `json:"vendor_name,omitempty"`
}
