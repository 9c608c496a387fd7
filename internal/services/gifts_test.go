package services

import (
	"context"
	"testing"
	"time"

	"stylecloset-service/internal/adapters/payments"
	"stylecloset-service/internal/adapters/repositories"
	"stylecloset-service/internal/domain"
)

func seedSchedule(t *testing.T, repo *repositories.MemoryGiftRepository, g domain.GiftSchedule) {
	t.Helper()
	if err := repo.Create(context.Background(), &g); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
}

func TestRunDueGiftSchedules(t *testing.T) {
	gifts := repositories.NewMemoryGiftRepository()
	orders := repositories.NewMemoryOrderRepository()
	provider := &payments.MockPaymentProvider{}

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	seedSchedule(t, gifts, domain.GiftSchedule{
		ID: "g-due", UserID: "user-1", Recipient: "Mom", Occasion: "birthday",
		BudgetCents: 5000, Cadence: domain.CadenceMonthly, Active: true,
		NextRunAt: now.AddDate(0, 0, -1),
	})
	seedSchedule(t, gifts, domain.GiftSchedule{
		ID: "g-future", UserID: "user-1", Recipient: "Dad",
		BudgetCents: 3000, Cadence: domain.CadenceWeekly, Active: true,
		NextRunAt: now.AddDate(0, 0, 3),
	})
	seedSchedule(t, gifts, domain.GiftSchedule{
		ID: "g-inactive", UserID: "user-1", Recipient: "Alex",
		BudgetCents: 2000, Cadence: domain.CadenceYearly, Active: false,
		NextRunAt: now.AddDate(0, 0, -10),
	})

	processed, err := RunDueGiftSchedules(context.Background(), now, gifts, orders, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1", processed)
	}

	stored := orders.All()
	if len(stored) != 1 {
		t.Fatalf("expected 1 order, got %d", len(stored))
	}
	if stored[0].AmountCents != 5000 || stored[0].UserID != "user-1" {
		t.Fatalf("unexpected order: %+v", stored[0])
	}

	// The due schedule advanced past now; the others are untouched.
	g, err := gifts.Get(context.Background(), "user-1", "g-due")
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if !g.NextRunAt.After(now) {
		t.Fatalf("NextRunAt = %v, want after %v", g.NextRunAt, now)
	}
}

func TestRunDueGiftSchedulesAdvancesPastMissedRuns(t *testing.T) {
	gifts := repositories.NewMemoryGiftRepository()
	orders := repositories.NewMemoryOrderRepository()
	provider := &payments.MockPaymentProvider{}

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// Missed three weekly runs; one catch-up order, next run in the future.
	seedSchedule(t, gifts, domain.GiftSchedule{
		ID: "g-stale", UserID: "user-1", Recipient: "Sam",
		BudgetCents: 1500, Cadence: domain.CadenceWeekly, Active: true,
		NextRunAt: now.AddDate(0, 0, -21),
	})

	processed, err := RunDueGiftSchedules(context.Background(), now, gifts, orders, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1", processed)
	}
	if len(orders.All()) != 1 {
		t.Fatalf("expected a single catch-up order, got %d", len(orders.All()))
	}

	g, _ := gifts.Get(context.Background(), "user-1", "g-stale")
	if !g.NextRunAt.After(now) {
		t.Fatalf("NextRunAt = %v, want after %v", g.NextRunAt, now)
	}
	if g.NextRunAt.After(now.AddDate(0, 0, 7)) {
		t.Fatalf("NextRunAt = %v, overshot one cadence from now", g.NextRunAt)
	}
}

func TestRunDueGiftSchedulesSkipsFailedCheckout(t *testing.T) {
	gifts := repositories.NewMemoryGiftRepository()
	orders := repositories.NewMemoryOrderRepository()
	provider := &payments.MockPaymentProvider{Err: domain.ErrUpstream}

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	nextRun := now.AddDate(0, 0, -1)

	seedSchedule(t, gifts, domain.GiftSchedule{
		ID: "g-due", UserID: "user-1", Recipient: "Mom",
		BudgetCents: 5000, Cadence: domain.CadenceMonthly, Active: true,
		NextRunAt: nextRun,
	})

	processed, err := RunDueGiftSchedules(context.Background(), now, gifts, orders, provider)
	if err != nil {
		t.Fatalf("a failed schedule should be skipped, not fatal: %v", err)
	}
	if processed != 0 {
		t.Fatalf("processed = %d, want 0", processed)
	}

	// Failure leaves the schedule due so the next sweep retries it.
	g, _ := gifts.Get(context.Background(), "user-1", "g-due")
	if !g.NextRunAt.Equal(nextRun) {
		t.Fatalf("NextRunAt advanced despite failure: %v", g.NextRunAt)
	}
}
