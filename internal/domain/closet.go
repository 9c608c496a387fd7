package domain

import (
	"strings"
	"time"
)

// ClosetItem is a single garment or accessory in a user's virtual closet.
type ClosetItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields a caller must always provide.
func (i ClosetItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &InvalidArgumentError{Field: "name", Reason: "must be non-empty"}
	}
	if strings.TrimSpace(i.Category) == "" {
		return &InvalidArgumentError{Field: "category", Reason: "must be non-empty"}
	}
	return nil
}
