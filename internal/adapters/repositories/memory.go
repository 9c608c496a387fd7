package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"stylecloset-service/internal/domain"
)

// In-memory implementations of the repository ports, used by tests and
// available for credential-free local runs of the server.

type MemoryClosetRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.ClosetItem
}

func NewMemoryClosetRepository() *MemoryClosetRepository {
	return &MemoryClosetRepository{items: make(map[string]*domain.ClosetItem)}
}

func (m *MemoryClosetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ClosetItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.ClosetItem, 0, len(m.items))
	for _, it := range m.items {
		if it.UserID == userID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryClosetRepository) Get(ctx context.Context, userID, id string) (*domain.ClosetItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return nil, fmt.Errorf("closet item %s: %w", id, domain.ErrNotFound)
	}
	cp := *it
	return &cp, nil
}

func (m *MemoryClosetRepository) Create(ctx context.Context, item *domain.ClosetItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *MemoryClosetRepository) Update(ctx context.Context, item *domain.ClosetItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return fmt.Errorf("closet item %s: %w", item.ID, domain.ErrNotFound)
	}
	cp := *item
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	m.items[item.ID] = &cp
	return nil
}

func (m *MemoryClosetRepository) Delete(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return fmt.Errorf("closet item %s: %w", id, domain.ErrNotFound)
	}
	delete(m.items, id)
	return nil
}

type MemoryGiftRepository struct {
	mu        sync.RWMutex
	schedules map[string]*domain.GiftSchedule
}

func NewMemoryGiftRepository() *MemoryGiftRepository {
	return &MemoryGiftRepository{schedules: make(map[string]*domain.GiftSchedule)}
}

func (m *MemoryGiftRepository) ListByUser(ctx context.Context, userID string) ([]*domain.GiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.GiftSchedule, 0, len(m.schedules))
	for _, g := range m.schedules {
		if g.UserID == userID {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryGiftRepository) Get(ctx context.Context, userID, id string) (*domain.GiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.schedules[id]
	if !ok || g.UserID != userID {
		return nil, fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}
	cp := *g
	return &cp, nil
}

func (m *MemoryGiftRepository) Create(ctx context.Context, schedule *domain.GiftSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *schedule
	m.schedules[schedule.ID] = &cp
	return nil
}

func (m *MemoryGiftRepository) Update(ctx context.Context, schedule *domain.GiftSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.schedules[schedule.ID]
	if !ok || existing.UserID != schedule.UserID {
		return fmt.Errorf("gift schedule %s: %w", schedule.ID, domain.ErrNotFound)
	}
	cp := *schedule
	cp.CreatedAt = existing.CreatedAt
	m.schedules[schedule.ID] = &cp
	return nil
}

func (m *MemoryGiftRepository) Delete(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.schedules[id]
	if !ok || g.UserID != userID {
		return fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}
	delete(m.schedules, id)
	return nil
}

func (m *MemoryGiftRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.GiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.GiftSchedule, 0)
	for _, g := range m.schedules {
		if g.Active && !g.NextRunAt.After(now) {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextRunAt.Equal(out[j].NextRunAt) {
			return out[i].NextRunAt.Before(out[j].NextRunAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryGiftRepository) Advance(ctx context.Context, id string, nextRunAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.schedules[id]
	if !ok {
		return fmt.Errorf("gift schedule %s: %w", id, domain.ErrNotFound)
	}
	g.NextRunAt = nextRunAt
	return nil
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *MemoryOrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *MemoryOrderRepository) SetCheckout(
	ctx context.Context,
	orderID, sessionID, checkoutURL string,
	status domain.OrderStatus,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	o.CheckoutSessionID = sessionID
	o.CheckoutURL = checkoutURL
	o.Status = status
	return nil
}

func (m *MemoryOrderRepository) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	o.Status = status
	return nil
}

// All returns every stored order, sorted by id. Test helper.
func (m *MemoryOrderRepository) All() []*domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
