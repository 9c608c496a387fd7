package ports

import (
	"context"
	"stylecloset-service/internal/domain"
)

// Contract for generating outfit suggestions from a user's closet.
// Implementations delegate the actual composition to an external model.
type OutfitGenerator interface {
	GenerateOutfits(ctx context.Context, items []*domain.ClosetItem, req domain.OutfitRequest) ([]domain.OutfitSuggestion, error)
}
