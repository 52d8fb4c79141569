package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

const maxBodyBytes = 1 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	orderService    *services.OrderService
	paymentService  *services.PaymentService
	callbackService *services.CallbackService
	queryService    *services.QueryService
	db              Pinger
	logger          *slog.Logger
}

func NewHandlers(
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	callbackService *services.CallbackService,
	queryService *services.QueryService,
	db Pinger,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orderService:    orderService,
		paymentService:  paymentService,
		callbackService: callbackService,
		queryService:    queryService,
		db:              db,
		logger:          logger,
	}
}

// Register mounts every endpoint on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /v1/orders", h.CreateOrder)
	mux.HandleFunc("GET /v1/checkouts/{orderID}", h.GetCheckout)
	mux.HandleFunc("POST /v1/callbacks/gateway", h.GatewayCallback)

	mux.HandleFunc("POST /v1/payments", h.StartPayment)
	mux.HandleFunc("GET /v1/payments/{attemptID}", h.GetPayment)
	mux.HandleFunc("POST /v1/payments/{attemptID}/wallet", h.SubmitWalletResult)
	mux.HandleFunc("POST /v1/payments/{attemptID}/navigation", h.ReportNavigation)
	mux.HandleFunc("POST /v1/payments/{attemptID}/cancel", h.CancelPayment)

	mux.HandleFunc("GET /v1/attempts/{attemptID}", h.GetAttempt)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			rest.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"success": false,
				"error": map[string]string{
					"code":    "UNAVAILABLE",
					"message": "database unreachable",
				},
			})
			return
		}
	}
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	rest.WriteError(w, err, h.logger)
}

// decodeBody reads a JSON request body into dst. Unknown fields are
// rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return application.NewInvalidInputError(fmt.Errorf("malformed request body: %w", err))
	}
	return nil
}

// attemptID binds the attemptID path parameter, which must be a UUID.
func attemptID(r *http.Request) (string, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "attemptID", r.PathValue("attemptID"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", application.NewInvalidInputError(domain.NewValidationError("attemptID", "must be a UUID"))
	}
	return id.String(), nil
}
