package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/ports"
	"stylecloset-service/internal/services"
)

// runTimeout bounds one sweep over the due schedules.
const runTimeout = 2 * time.Minute

// GiftScheduler periodically turns due gift schedules into orders.
type GiftScheduler struct {
	cron     *cron.Cron
	gifts    ports.GiftScheduleRepository
	orders   ports.OrderRepository
	payments ports.PaymentProvider
}

func New(gifts ports.GiftScheduleRepository, orders ports.OrderRepository, payments ports.PaymentProvider) *GiftScheduler {
	return &GiftScheduler{
		cron:     cron.New(),
		gifts:    gifts,
		orders:   orders,
		payments: payments,
	}
}

// Start registers the sweep on the given cron spec and begins running
// it in the background.
func (s *GiftScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		s.RunOnce(ctx, time.Now().UTC())
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.WithField("spec", spec).Info("gift scheduler started")
	return nil
}

// Stop halts the cron loop and waits for any in-flight sweep to finish.
func (s *GiftScheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("gift scheduler stopped")
}

// RunOnce executes a single sweep. Exposed so operators can trigger a
// run outside the cron cadence.
func (s *GiftScheduler) RunOnce(ctx context.Context, now time.Time) int {
	processed, err := services.RunDueGiftSchedules(ctx, now, s.gifts, s.orders, s.payments)
	if err != nil {
		log.WithError(err).Error("gift schedule sweep failed")
		return processed
	}

	if processed > 0 {
		log.WithField("processed", processed).Info("gift schedules processed")
	}
	return processed
}
