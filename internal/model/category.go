package model

import "time"

// Category is either a shared default (seeded, never deletable) or a
// user-created custom category.
type Category struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	ParentCategory *string   `json:"parent_category"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}
