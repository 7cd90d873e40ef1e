// Package httpapi exposes the HTTP API layer of the storefront.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/willowmart/storefront/internal/errx"
	"github.com/willowmart/storefront/internal/obs"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteAppError maps a service error onto its HTTP status and safe message.
// Internal (500-class) causes are logged and never written to the client.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		obs.Logger.Error("internal_error",
			"error", err.Error(),
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
	WriteJSONError(w, status, errx.MessageOf(err), "")
}
