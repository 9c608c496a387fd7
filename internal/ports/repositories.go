package ports

import (
	"context"
	"time"

	"stylecloset-service/internal/domain"
)

// Port: a boundary for storing and retrieving closet items.
type ClosetRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.ClosetItem, error)
	// Get returns domain.ErrNotFound when no item matches id and userID.
	Get(ctx context.Context, userID, id string) (*domain.ClosetItem, error)
	Create(ctx context.Context, item *domain.ClosetItem) error
	Update(ctx context.Context, item *domain.ClosetItem) error
	Delete(ctx context.Context, userID, id string) error
}

// Port: a boundary for storing recurring gift schedules.
type GiftScheduleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.GiftSchedule, error)
	Get(ctx context.Context, userID, id string) (*domain.GiftSchedule, error)
	Create(ctx context.Context, schedule *domain.GiftSchedule) error
	Update(ctx context.Context, schedule *domain.GiftSchedule) error
	Delete(ctx context.Context, userID, id string) error

	// ListDue returns active schedules whose next run is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]*domain.GiftSchedule, error)
	// Advance moves a schedule's next run forward after it has produced
	// an order.
	Advance(ctx context.Context, id string, nextRunAt time.Time) error
}

// Port: a boundary for storing orders.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	// SetCheckout records the payment provider's session reference and
	// the resulting status transition.
	SetCheckout(ctx context.Context, orderID, sessionID, checkoutURL string, status domain.OrderStatus) error
	SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}
