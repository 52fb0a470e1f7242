package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`

	// Problems per input field, present for validation failures
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse represents a plain confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Logged out
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps the error taxonomy to a status and body. Unknown errors
// are logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Fields: verr.Fields})
	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, models.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
	case errors.Is(err, models.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Access restricted"})
	case errors.Is(err, models.ErrConflict):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email already in use"})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	default:
		logger.Log.Errorw(op+" failed", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
