package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

// CheckoutRequest describes a purchase to hand off to the payment
// provider.
type CheckoutRequest struct {
	UserID      string
	AmountCents int
	Currency    string
	Description string
}

func (r CheckoutRequest) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return &domain.InvalidArgumentError{Field: "user_id", Reason: "must be non-empty"}
	}
	if r.AmountCents <= 0 {
		return &domain.InvalidArgumentError{Field: "amount_cents", Reason: "must be positive"}
	}
	if len(r.Currency) != 3 {
		return &domain.InvalidArgumentError{Field: "currency", Reason: "must be a 3-letter code"}
	}
	return nil
}

// CheckoutOrder records a pending order, asks the payment provider for
// a checkout session, and stores the session reference. The order row
// exists before the provider is called so a provider failure leaves an
// auditable failed order rather than nothing.
func CheckoutOrder(
	ctx context.Context,
	req CheckoutRequest,
	orders ports.OrderRepository,
	payments ports.PaymentProvider,
) (_ *domain.Order, err error) {
	defer obs.Time(ctx, "checkout.CreateOrder")(&err)

	if err := req.validate(); err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		Currency:    strings.ToLower(req.Currency),
		Description: req.Description,
		Status:      domain.OrderPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("checkout: create order: %w", err)
	}

	session, err := payments.CreateCheckoutSession(ctx, order)
	if err != nil {
		if derr := orders.SetStatus(ctx, order.ID, domain.OrderFailed); derr != nil {
			log.WithFields(log.Fields{"order_id": order.ID}).
				WithError(derr).Error("failed to mark order failed")
		}
		return nil, fmt.Errorf("checkout: create session for order %s: %w", order.ID, err)
	}

	if err := orders.SetCheckout(ctx, order.ID, session.ID, session.URL, domain.OrderAwaitingPayment); err != nil {
		return nil, fmt.Errorf("checkout: store session for order %s: %w", order.ID, err)
	}

	order.Status = domain.OrderAwaitingPayment
	order.CheckoutSessionID = session.ID
	order.CheckoutURL = session.URL

	return &order, nil
}
