// Package http provides chi-compatible HTTP plumbing for the local API
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bitnation/pangea-core/pkg/apperrors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/nations", http.HandleError(h.saveDraft))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler renders errors returned from HTTP handlers. Service
// errors keep their localization key and params so the UI can translate them;
// anything else collapses to a bare 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	type errorResponse struct {
		TransKey string         `json:"transKey"`
		Params   map[string]any `json:"params,omitempty"`
		Code     int            `json:"code"`
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(svcErr.StatusCode())
		_ = json.NewEncoder(w).Encode(&errorResponse{
			TransKey: svcErr.TransKey,
			Params:   svcErr.Params,
			Code:     svcErr.StatusCode(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(&errorResponse{
		TransKey: "system_error.unexpected",
		Code:     http.StatusInternalServerError,
	})
}

// WriteJSON writes data as a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
