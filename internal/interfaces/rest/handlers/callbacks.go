package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest"
)

// GatewayCallback receives the gateway's server callback. Numbers are kept
// as json.Number so the signature is computed over the values as sent.
func (h *Handlers) GatewayCallback(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]any)
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		h.fail(w, application.NewInvalidInputError(fmt.Errorf("malformed callback body: %w", err)))
		return
	}

	checkout, err := h.callbackService.HandleCallback(r.Context(), services.CallbackCommand{Params: params})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.CheckoutResponse{
		Success: true,
		Data:    rest.ToAPICheckout(checkout),
	})
}
