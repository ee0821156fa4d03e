package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, response := mapServiceErrorToResponse(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}

	respondJSON(w, status, response)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownIngredient   = "Unknown ingredient"
	ErrMsgUnknownEffect       = "Unknown effect"
	ErrMsgTooManyIngredients  = "Too many ingredients"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgCatalogUnavailable  = "Catalog is not loaded yet. Please try again later."
	ErrMsgRequestCancelled    = "Request cancelled"
	ErrMsgBrewTimedOut        = "Brewing took too long. Try fewer ingredients or effects."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."
)

// mapServiceErrorToResponse maps domain errors to HTTP status codes and
// user-facing bodies. Request problems become 400s and keep their detail;
// anything else is reported generically.
func mapServiceErrorToResponse(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
	}

	var unknown *catalog.UnknownNameError
	if errors.As(err, &unknown) {
		msg := ErrMsgUnknownIngredient
		if errors.Is(err, domain.ErrEffectNotFound) {
			msg = ErrMsgUnknownEffect
		}
		return http.StatusBadRequest, ErrorResponse{
			Error:       msg + ": " + unknown.Name,
			Suggestions: unknown.Suggestions,
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnknownIngredient):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgUnknownIngredient}
	case errors.Is(err, domain.ErrEffectNotFound):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgUnknownEffect}
	case errors.Is(err, domain.ErrTooManyIngredients):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgCatalogUnavailable}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Error: ErrMsgRequestCancelled}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgBrewTimedOut}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
