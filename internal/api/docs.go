package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/swaggo/swag"
)

type specDocs struct{}

func (specDocs) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		slog.Error("openapi spec unavailable", "error", err)
		return "{}"
	}
	b, err := json.Marshal(doc)
	if err != nil {
		slog.Error("failed to encode openapi spec", "error", err)
		return "{}"
	}
	return string(b)
}

func init() {
	swag.Register(swag.Name, specDocs{})
}

// RegisterDocsRoutes serves the OpenAPI document as JSON.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
}
