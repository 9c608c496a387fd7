package handlers

import (
	"net/http"

	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/ports"
	"stylecloset-service/internal/services"
)

// OutfitHandler exposes AI outfit recommendations over the user's closet.
type OutfitHandler struct {
	Closet    ports.ClosetRepository
	Generator ports.OutfitGenerator
}

// Recommend handles POST /outfits/recommend.
func (h *OutfitHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.OutfitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	suggestions, err := services.RecommendOutfits(r.Context(), userID, domain.OutfitRequest{
		Occasion: req.Occasion,
		Weather:  req.Weather,
		Style:    req.Style,
	}, h.Closet, h.Generator)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromOutfitSuggestions(suggestions))
}
