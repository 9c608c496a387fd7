package handlers

import (
	"net/http"

	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/ports"
	"stylecloset-service/internal/services"
)

// CheckoutHandler exposes order creation and listing.
type CheckoutHandler struct {
	Orders   ports.OrderRepository
	Payments ports.PaymentProvider
}

// Create handles POST /checkout.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := services.CheckoutOrder(r.Context(), services.CheckoutRequest{
		UserID:      userID,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
	}, h.Orders, h.Payments)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromOrder(order))
}

// List handles GET /orders.
func (h *CheckoutHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	orders, err := h.Orders.ListByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.FromOrder(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}
