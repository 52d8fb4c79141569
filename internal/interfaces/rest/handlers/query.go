package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest"
)

func (h *Handlers) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := attemptID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	attempt, err := h.queryService.FindAttempt(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.AttemptResponse{
		Success: true,
		Data:    rest.ToAPIAttempt(attempt),
	})
}

func (h *Handlers) GetCheckout(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.queryService.FindCheckout(r.Context(), r.PathValue("orderID"))
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.CheckoutResponse{
		Success: true,
		Data:    rest.ToAPICheckout(checkout),
	})
}
