package ports

import (
	"context"
	"stylecloset-service/internal/domain"
)

// CheckoutSession is the payment provider's reference for a pending
// payment: an opaque session id plus the URL the user is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// Contract for handing an order off to the external payment processor.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, order domain.Order) (CheckoutSession, error)
}
