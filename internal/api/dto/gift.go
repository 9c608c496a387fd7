package dto

import (
	"time"

	"stylecloset-service/internal/domain"
)

type GiftScheduleRequest struct {
	Recipient   string     `json:"recipient"`
	Occasion    string     `json:"occasion"`
	BudgetCents int        `json:"budget_cents"`
	Cadence     string     `json:"cadence"`
	StartAt     *time.Time `json:"start_at"`
	Active      *bool      `json:"active"`
}

type GiftScheduleResponse struct {
	ID          string    `json:"id"`
	Recipient   string    `json:"recipient"`
	Occasion    string    `json:"occasion,omitempty"`
	BudgetCents int       `json:"budget_cents"`
	Cadence     string    `json:"cadence"`
	NextRunAt   time.Time `json:"next_run_at"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListGiftSchedulesResponse struct {
	Schedules []GiftScheduleResponse `json:"schedules"`
}

func FromGiftSchedule(g *domain.GiftSchedule) GiftScheduleResponse {
	return GiftScheduleResponse{
		ID:          g.ID,
		Recipient:   g.Recipient,
		Occasion:    g.Occasion,
		BudgetCents: g.BudgetCents,
		Cadence:     string(g.Cadence),
		NextRunAt:   g.NextRunAt,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
	}
}
