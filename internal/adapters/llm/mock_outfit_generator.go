package llm

import (
	"context"

	"stylecloset-service/internal/domain"
)

// MockOutfitGenerator is an in-memory OutfitGenerator for tests.
type MockOutfitGenerator struct {
	Suggestions []domain.OutfitSuggestion
	Err         error
}

func (m *MockOutfitGenerator) GenerateOutfits(
	ctx context.Context,
	items []*domain.ClosetItem,
	req domain.OutfitRequest,
) ([]domain.OutfitSuggestion, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions, nil
}
