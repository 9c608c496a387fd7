package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

// RunDueGiftSchedules turns every due gift schedule into a pending order
// and advances its next run time. One schedule failing is logged and
// skipped; the remaining schedules still run. Returns the number of
// schedules that produced an order.
func RunDueGiftSchedules(
	ctx context.Context,
	now time.Time,
	gifts ports.GiftScheduleRepository,
	orders ports.OrderRepository,
	payments ports.PaymentProvider,
) (_ int, err error) {
	defer obs.Time(ctx, "gifts.RunDue")(&err)

	due, err := gifts.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("run gift schedules: list due: %w", err)
	}

	processed := 0
	for _, g := range due {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		req := CheckoutRequest{
			UserID:      g.UserID,
			AmountCents: g.BudgetCents,
			Currency:    "usd",
			Description: fmt.Sprintf("recurring gift for %s (%s)", g.Recipient, g.Occasion),
		}

		if _, err := CheckoutOrder(ctx, req, orders, payments); err != nil {
			log.WithFields(log.Fields{"schedule_id": g.ID}).
				WithError(err).Warn("gift schedule checkout failed")
			continue
		}

		// Advance from the scheduled time, not from now, so a late run
		// does not drift the cadence.
		next := g.Cadence.Next(g.NextRunAt)
		for !next.After(now) {
			next = g.Cadence.Next(next)
		}
		if err := gifts.Advance(ctx, g.ID, next); err != nil {
			log.WithFields(log.Fields{"schedule_id": g.ID}).
				WithError(err).Error("failed to advance gift schedule")
			continue
		}

		processed++
	}

	return processed, nil
}
