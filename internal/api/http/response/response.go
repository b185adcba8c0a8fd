// Package response writes JSON bodies for the HTTP API.
package response

import (
	"encoding/json"
	"net/http"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as {error, details?} with its status.
func Error(w http.ResponseWriter, err *apiErrors.APIError) {
	JSON(w, err.Status, errorBody{Error: err.Message, Details: err.Details})
}
