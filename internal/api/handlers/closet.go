package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/ports"
)

// ClosetHandler exposes CRUD endpoints for a user's virtual closet.
type ClosetHandler struct {
	Repo ports.ClosetRepository
}

// Collection handles GET and POST on /closet.
func (h *ClosetHandler) Collection(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		items, err := h.Repo.ListByUser(r.Context(), userID)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		res := dto.ListClosetResponse{Items: make([]dto.ClosetItemResponse, 0, len(items))}
		for _, it := range items {
			res.Items = append(res.Items, dto.FromClosetItem(it))
		}
		writeJSON(w, r, http.StatusOK, res)

	case http.MethodPost:
		var req dto.ClosetItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		now := time.Now().UTC()
		item := domain.ClosetItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      req.Name,
			Category:  req.Category,
			Color:     req.Color,
			Brand:     req.Brand,
			ImageURL:  req.ImageURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := item.Validate(); err != nil {
			writeDomainError(w, r, err)
			return
		}

		if err := h.Repo.Create(r.Context(), &item); err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, dto.FromClosetItem(&item))

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles GET, PUT and DELETE on /closet/{id}.
func (h *ClosetHandler) Item(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "item id is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := h.Repo.Get(r.Context(), userID, id)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.FromClosetItem(item))

	case http.MethodPut:
		var req dto.ClosetItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		item := domain.ClosetItem{
			ID:       id,
			UserID:   userID,
			Name:     req.Name,
			Category: req.Category,
			Color:    req.Color,
			Brand:    req.Brand,
			ImageURL: req.ImageURL,
		}
		if err := item.Validate(); err != nil {
			writeDomainError(w, r, err)
			return
		}

		if err := h.Repo.Update(r.Context(), &item); err != nil {
			writeDomainError(w, r, err)
			return
		}

		updated, err := h.Repo.Get(r.Context(), userID, id)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.FromClosetItem(updated))

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
