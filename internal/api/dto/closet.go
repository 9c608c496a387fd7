package dto

import (
	"time"

	"stylecloset-service/internal/domain"
)

type ClosetItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
	ImageURL string `json:"image_url"`
}

type ClosetItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListClosetResponse struct {
	Items []ClosetItemResponse `json:"items"`
}

func FromClosetItem(it *domain.ClosetItem) ClosetItemResponse {
	return ClosetItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Color:     it.Color,
		Brand:     it.Brand,
		ImageURL:  it.ImageURL,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
