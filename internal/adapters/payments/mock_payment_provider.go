package payments

import (
	"context"
	"fmt"
	"sync/atomic"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/ports"
)

// MockPaymentProvider is an in-memory PaymentProvider for tests. It
// mints predictable session ids from a counter.
type MockPaymentProvider struct {
	Err error

	Calls atomic.Int64
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	order domain.Order,
) (ports.CheckoutSession, error) {
	n := m.Calls.Add(1)

	if m.Err != nil {
		return ports.CheckoutSession{}, m.Err
	}
	return ports.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", n),
		URL: fmt.Sprintf("https://checkout.example.com/cs_test_%d", n),
	}, nil
}
