package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest"
)

func (h *Handlers) StartPayment(w http.ResponseWriter, r *http.Request) {
	var req api.StartPaymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, err)
		return
	}

	view, err := h.paymentService.Start(r.Context(), services.StartPaymentCommand{Token: req.Token})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusAccepted, api.PaymentResponse{
		Success: true,
		Data:    rest.ToAPIPayment(view),
	})
}

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := attemptID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	view, err := h.paymentService.Status(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.PaymentResponse{
		Success: true,
		Data:    rest.ToAPIPayment(view),
	})
}

func (h *Handlers) SubmitWalletResult(w http.ResponseWriter, r *http.Request) {
	id, err := attemptID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var req api.WalletResult
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, err)
		return
	}

	err = h.paymentService.SubmitWallet(r.Context(), services.WalletResultCommand{
		AttemptID: id,
		Result:    rest.ToWalletResult(req),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusAccepted, api.AcceptedResponse{Success: true})
}

func (h *Handlers) ReportNavigation(w http.ResponseWriter, r *http.Request) {
	id, err := attemptID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var req api.NavigationRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, err)
		return
	}

	cancel, err := h.paymentService.ReportNavigation(r.Context(), services.NavigationCommand{
		AttemptID: id,
		URL:       req.URL,
		Phase:     services.NavigationPhase(req.Phase),
		Error:     req.Error,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.NavigationResponse{Success: true, Cancel: cancel})
}

func (h *Handlers) CancelPayment(w http.ResponseWriter, r *http.Request) {
	id, err := attemptID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := h.paymentService.Cancel(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusAccepted, api.AcceptedResponse{Success: true})
}
