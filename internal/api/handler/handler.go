// Package handler implements the HTTP handlers of the relay: the WhatsApp
// webhook endpoint and the JWT-protected operator API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"relay/internal/relay"
	"relay/pkg/logger"
	"relay/pkg/serrors"
)

// Deps carries the dependencies shared by all handlers.
type Deps struct {
	// Relay is the core service behind every endpoint.
	Relay relay.Service
}

// errorResponse is the JSON body returned for every non-2xx response.
type errorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps the semantic kind of err to an HTTP status and writes an
// error body. Internal details are logged, not exposed.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := "internal error"

	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status, detail = http.StatusBadRequest, serrors.MessageOf(err)
	case errors.Is(err, serrors.ErrUnauthorized):
		status, detail = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, serrors.ErrNotFound):
		status, detail = http.StatusNotFound, serrors.MessageOf(err)
	case errors.Is(err, serrors.ErrConflict):
		status, detail = http.StatusConflict, serrors.MessageOf(err)
	case errors.Is(err, serrors.ErrRateLimited):
		status, detail = http.StatusTooManyRequests, "rate limited"
	case errors.Is(err, serrors.ErrUnavailable):
		status, detail = http.StatusServiceUnavailable, "unavailable"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		logger.Warn(r.Context(), "request rejected", zap.Error(err))
	}

	respondJSON(w, status, errorResponse{Status: "error", Detail: detail})
}
