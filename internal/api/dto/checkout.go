package dto

import (
	"time"

	"stylecloset-service/internal/domain"
)

type CheckoutRequest struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type OrderResponse struct {
	ID                string    `json:"id"`
	AmountCents       int       `json:"amount_cents"`
	Currency          string    `json:"currency"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status"`
	CheckoutSessionID string    `json:"checkout_session_id,omitempty"`
	CheckoutURL       string    `json:"checkout_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func FromOrder(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		AmountCents:       o.AmountCents,
		Currency:          o.Currency,
		Description:       o.Description,
		Status:            string(o.Status),
		CheckoutSessionID: o.CheckoutSessionID,
		CheckoutURL:       o.CheckoutURL,
		CreatedAt:         o.CreatedAt,
	}
}
