package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest"
)

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req api.CreateOrderRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, err)
		return
	}

	checkout, err := h.orderService.CreateOrder(r.Context(), rest.ToCreateOrderCommand(req))
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, api.CheckoutResponse{
		Success: true,
		Data:    rest.ToAPICheckout(checkout),
	})
}
