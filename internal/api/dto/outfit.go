package dto

import "stylecloset-service/internal/domain"

type OutfitRequest struct {
	Occasion string `json:"occasion"`
	Weather  string `json:"weather"`
	Style    string `json:"style"`
}

type OutfitSuggestionResponse struct {
	Title   string   `json:"title"`
	ItemIDs []string `json:"item_ids"`
	Notes   string   `json:"notes,omitempty"`
}

type ListOutfitsResponse struct {
	Outfits []OutfitSuggestionResponse `json:"outfits"`
}

func FromOutfitSuggestions(in []domain.OutfitSuggestion) ListOutfitsResponse {
	out := ListOutfitsResponse{Outfits: make([]OutfitSuggestionResponse, 0, len(in))}
	for _, s := range in {
		out.Outfits = append(out.Outfits, OutfitSuggestionResponse{
			Title:   s.Title,
			ItemIDs: s.ItemIDs,
			Notes:   s.Notes,
		})
	}
	return out
}
