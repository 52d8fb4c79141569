package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
)

// WriteError maps application errors to HTTP responses. Server-side
// failures are logged; client errors are not.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	if statusCode >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"status", statusCode,
			"code", errorCode,
			"category", application.CategorizeError(err),
			"error", err,
		)
	}

	response := api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    errorCode,
			Message: err.Error(),
		},
	}

	WriteJSON(w, statusCode, response)
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
