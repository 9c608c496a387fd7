package domain

// OutfitRequest carries the context a user gives when asking for outfit
// recommendations from their closet.
type OutfitRequest struct {
	Occasion string `json:"occasion"`
	Weather  string `json:"weather,omitempty"`
	Style    string `json:"style,omitempty"`
}

// OutfitSuggestion is one generated outfit. ItemIDs reference closet
// items owned by the requesting user.
type OutfitSuggestion struct {
	Title   string   `json:"title"`
	ItemIDs []string `json:"item_ids"`
	Notes   string   `json:"notes,omitempty"`
}
