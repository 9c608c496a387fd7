package domain

import (
	"strings"
	"time"
)

// Cadence is how often a recurring gift repeats.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceMonthly, CadenceYearly:
		return true
	}
	return false
}

// Next returns the run time that follows from in this cadence.
func (c Cadence) Next(from time.Time) time.Time {
	switch c {
	case CadenceWeekly:
		return from.AddDate(0, 0, 7)
	case CadenceMonthly:
		return from.AddDate(0, 1, 0)
	case CadenceYearly:
		return from.AddDate(1, 0, 0)
	}
	return from
}

// GiftSchedule is a recurring gift order placed on behalf of a user.
// The scheduler turns due schedules into pending orders and advances
// NextRunAt by the cadence.
type GiftSchedule struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Recipient   string    `json:"recipient"`
	Occasion    string    `json:"occasion"`
	BudgetCents int       `json:"budget_cents"`
	Cadence     Cadence   `json:"cadence"`
	NextRunAt   time.Time `json:"next_run_at"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the fields a caller must always provide.
func (g GiftSchedule) Validate() error {
	if strings.TrimSpace(g.Recipient) == "" {
		return &InvalidArgumentError{Field: "recipient", Reason: "must be non-empty"}
	}
	if g.BudgetCents <= 0 {
		return &InvalidArgumentError{Field: "budget_cents", Reason: "must be positive"}
	}
	if !g.Cadence.Valid() {
		return &InvalidArgumentError{Field: "cadence", Reason: "must be one of weekly, monthly, yearly"}
	}
	return nil
}
