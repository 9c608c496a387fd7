package dto

import "stylecloset-service/internal/domain"

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PhotoResponse struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type PlaceDetailResponse struct {
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
	Address      string   `json:"address,omitempty"`
}

type PlaceResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Address    string               `json:"address"`
	Location   LocationResponse     `json:"location"`
	Rating     *float64             `json:"rating,omitempty"`
	Photos     []PhotoResponse      `json:"photos"`
	DistanceKm float64              `json:"distance_km"`
	Distance   string               `json:"distance"`
	Details    *PlaceDetailResponse `json:"details,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

// FromPlace maps a domain place, including the miles display string
// legacy clients expect.
func FromPlace(p domain.Place) PlaceResponse {
	photos := make([]PhotoResponse, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, PhotoResponse{URL: ph.URL, Width: ph.Width, Height: ph.Height})
	}

	res := PlaceResponse{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		Location:   LocationResponse{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Rating:     p.Rating,
		Photos:     photos,
		DistanceKm: p.DistanceKm,
		Distance:   p.DistanceMiles(),
	}

	if p.Detail != nil {
		res.Details = &PlaceDetailResponse{
			Phone:        p.Detail.Phone,
			Website:      p.Detail.Website,
			OpeningHours: p.Detail.OpeningHours,
			Address:      p.Detail.Address,
		}
	}

	return res
}
