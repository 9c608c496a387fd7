package api

import (
	"net/http"

	"stylecloset-service/internal/api/handlers"
	"stylecloset-service/internal/auth"
	"stylecloset-service/internal/ports"
)

// Deps collects everything the HTTP layer needs. Handlers stay unaware
// of concrete adapters.
type Deps struct {
	Places   ports.PlacesProvider
	Geocoder ports.Geocoder
	Geocache ports.GeocodeCache
	Closet   ports.ClosetRepository
	Gifts    ports.GiftScheduleRepository
	Orders   ports.OrderRepository
	Outfits  ports.OutfitGenerator
	Payments ports.PaymentProvider
	Verifier *auth.Verifier
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	storeHandler := &handlers.StoreHandler{
		Provider: d.Places,
		Geocoder: d.Geocoder,
		Cache:    d.Geocache,
	}
	closetHandler := &handlers.ClosetHandler{Repo: d.Closet}
	outfitHandler := &handlers.OutfitHandler{Closet: d.Closet, Generator: d.Outfits}
	giftHandler := &handlers.GiftHandler{Repo: d.Gifts}
	checkoutHandler := &handlers.CheckoutHandler{Orders: d.Orders, Payments: d.Payments}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stores/nearby", storeHandler.Nearby)
	mux.HandleFunc("/closet", closetHandler.Collection)
	mux.HandleFunc("/closet/{id}", closetHandler.Item)
	mux.HandleFunc("/outfits/recommend", outfitHandler.Recommend)
	mux.HandleFunc("/gifts", giftHandler.Collection)
	mux.HandleFunc("/gifts/{id}", giftHandler.Item)
	mux.HandleFunc("/checkout", checkoutHandler.Create)
	mux.HandleFunc("/orders", checkoutHandler.List)

	return loggingMiddleware(authMiddleware(d.Verifier, mux))
}
