package domain

// PlacePhoto is a displayable image for a place. URL points at the
// provider's photo endpoint; the image itself is never fetched here.
type PlacePhoto struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PlaceDetail is the optional enrichment record fetched in a second
// pass. Absent when enrichment fails or is not requested.
type PlaceDetail struct {
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
	Address      string   `json:"address,omitempty"`
}

// Place is a single point of interest returned by the external places
// provider. Records are built fresh per query and never persisted;
// ID is the de-duplication key.
type Place struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Address    string       `json:"address"`
	Location   Coordinates  `json:"location"`
	Rating     *float64     `json:"rating,omitempty"`
	Photos     []PlacePhoto `json:"photos"`
	DistanceKm float64      `json:"distance_km"`
	Detail     *PlaceDetail `json:"details,omitempty"`
}

// DistanceMiles returns the display form of DistanceKm, e.g. "3.1 miles".
func (p Place) DistanceMiles() string {
	return FormatMiles(p.DistanceKm)
}
