package domain

import "time"

// OrderStatus tracks an order through checkout. Payment confirmation is
// delivered out of band by the payment provider, so "paid" is only ever
// set by backoffice tooling, not by this service.
type OrderStatus string

const (
	OrderPending         OrderStatus = "pending"
	OrderAwaitingPayment OrderStatus = "awaiting_payment"
	OrderPaid            OrderStatus = "paid"
	OrderFailed          OrderStatus = "failed"
)

// Order is a purchase initiated by a user (or by the gift scheduler on
// a user's behalf) and handed off to the payment provider.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	AmountCents       int         `json:"amount_cents"`
	Currency          string      `json:"currency"`
	Description       string      `json:"description,omitempty"`
	Status            OrderStatus `json:"status"`
	CheckoutSessionID string      `json:"checkout_session_id,omitempty"`
	CheckoutURL       string      `json:"checkout_url,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}
