package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/ports"
)

// GiftHandler exposes CRUD endpoints for recurring gift schedules.
type GiftHandler struct {
	Repo ports.GiftScheduleRepository
}

// Collection handles GET and POST on /gifts.
func (h *GiftHandler) Collection(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		schedules, err := h.Repo.ListByUser(r.Context(), userID)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		res := dto.ListGiftSchedulesResponse{Schedules: make([]dto.GiftScheduleResponse, 0, len(schedules))}
		for _, g := range schedules {
			res.Schedules = append(res.Schedules, dto.FromGiftSchedule(g))
		}
		writeJSON(w, r, http.StatusOK, res)

	case http.MethodPost:
		var req dto.GiftScheduleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		now := time.Now().UTC()
		schedule := domain.GiftSchedule{
			ID:          uuid.NewString(),
			UserID:      userID,
			Recipient:   req.Recipient,
			Occasion:    req.Occasion,
			BudgetCents: req.BudgetCents,
			Cadence:     domain.Cadence(req.Cadence),
			Active:      true,
			CreatedAt:   now,
		}
		if err := schedule.Validate(); err != nil {
			writeDomainError(w, r, err)
			return
		}

		// First run defaults to one cadence period from now.
		if req.StartAt != nil {
			schedule.NextRunAt = req.StartAt.UTC()
		} else {
			schedule.NextRunAt = schedule.Cadence.Next(now)
		}

		if err := h.Repo.Create(r.Context(), &schedule); err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, dto.FromGiftSchedule(&schedule))

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles GET, PUT and DELETE on /gifts/{id}.
func (h *GiftHandler) Item(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "schedule id is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		schedule, err := h.Repo.Get(r.Context(), userID, id)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.FromGiftSchedule(schedule))

	case http.MethodPut:
		var req dto.GiftScheduleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		existing, err := h.Repo.Get(r.Context(), userID, id)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		existing.Recipient = req.Recipient
		existing.Occasion = req.Occasion
		existing.BudgetCents = req.BudgetCents
		existing.Cadence = domain.Cadence(req.Cadence)
		if req.StartAt != nil {
			existing.NextRunAt = req.StartAt.UTC()
		}
		if req.Active != nil {
			existing.Active = *req.Active
		}

		if err := existing.Validate(); err != nil {
			writeDomainError(w, r, err)
			return
		}

		if err := h.Repo.Update(r.Context(), existing); err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.FromGiftSchedule(existing))

	case http.MethodDelete:
		if err := h.Repo.Delete(r.Context(), userID, id); err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
