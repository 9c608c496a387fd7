package services

import (
	"context"
	"fmt"
	"strings"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

// RecommendOutfits loads the user's closet and delegates outfit
// composition to the external generator. Nothing is persisted; a fresh
// call produces fresh suggestions.
func RecommendOutfits(
	ctx context.Context,
	userID string,
	req domain.OutfitRequest,
	closet ports.ClosetRepository,
	generator ports.OutfitGenerator,
) (_ []domain.OutfitSuggestion, err error) {
	defer obs.Time(ctx, "outfits.Recommend")(&err)

	if strings.TrimSpace(req.Occasion) == "" {
		return nil, &domain.InvalidArgumentError{Field: "occasion", Reason: "must be non-empty"}
	}

	items, err := closet.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recommend outfits: list closet: %w", err)
	}
	if len(items) == 0 {
		return nil, &domain.InvalidArgumentError{
			Field: "closet", Reason: "closet is empty; add items before requesting outfits",
		}
	}

	suggestions, err := generator.GenerateOutfits(ctx, items, req)
	if err != nil {
		return nil, fmt.Errorf("recommend outfits: generate: %w", err)
	}

	// Drop references to items the user does not own; the model output
	// is untrusted.
	owned := make(map[string]struct{}, len(items))
	for _, it := range items {
		owned[it.ID] = struct{}{}
	}

	out := make([]domain.OutfitSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		kept := make([]string, 0, len(s.ItemIDs))
		for _, id := range s.ItemIDs {
			if _, ok := owned[id]; ok {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			continue
		}
		s.ItemIDs = kept
		out = append(out, s)
	}

	return out, nil
}
