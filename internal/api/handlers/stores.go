package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/ports"
	"stylecloset-service/internal/services"
)

// Place type searched when the caller does not narrow the search.
const defaultPlaceType = "clothing_store"

// StoreHandler exposes the nearby-store search. Callers pass either
// explicit coordinates or a free-text address that is geocoded first.
type StoreHandler struct {
	Provider ports.PlacesProvider
	Geocoder ports.Geocoder
	Cache    ports.GeocodeCache
}

// Nearby handles GET /stores/nearby.
//
// Query parameters: lat+lng or address (one of the two is required),
// radius (meters, default 5000), types (comma-separated, default
// clothing_store), details (bool).
func (h *StoreHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params := r.URL.Query()

	center, ok := h.resolveCenter(w, r)
	if !ok {
		return
	}

	radius := services.DefaultRadiusMeters
	if raw := params.Get("radius"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "radius must be an integer")
			return
		}
		radius = v
	}

	types := []string{defaultPlaceType}
	if raw := strings.TrimSpace(params.Get("types")); raw != "" {
		types = types[:0]
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	query := services.NearbyQuery{
		Center:         center,
		RadiusMeters:   radius,
		Types:          types,
		IncludeDetails: params.Get("details") == "true",
	}

	places, err := services.FindNearbyStores(r.Context(), query, h.Provider)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, dto.FromPlace(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveCenter picks the query center from lat/lng parameters, or
// geocodes the address parameter when coordinates are absent.
func (h *StoreHandler) resolveCenter(w http.ResponseWriter, r *http.Request) (domain.Coordinates, bool) {
	params := r.URL.Query()
	rawLat, rawLng := params.Get("lat"), params.Get("lng")

	if rawLat != "" || rawLng != "" {
		lat, err := strconv.ParseFloat(rawLat, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "lat must be a number")
			return domain.Coordinates{}, false
		}
		lng, err := strconv.ParseFloat(rawLng, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "lng must be a number")
			return domain.Coordinates{}, false
		}
		return domain.Coordinates{Lat: lat, Lng: lng}, true
	}

	address := params.Get("address")
	if strings.TrimSpace(address) == "" {
		writeError(w, r, http.StatusBadRequest, "lat/lng or address is required")
		return domain.Coordinates{}, false
	}

	center, err := services.ResolveAddress(r.Context(), address, h.Geocoder, h.Cache)
	if err != nil {
		writeDomainError(w, r, err)
		return domain.Coordinates{}, false
	}

	return center, true
}
