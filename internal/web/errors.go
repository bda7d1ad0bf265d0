package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err, statusCode)
//  3. Error is mapped via core.MapError to get user-friendly message
//  4. Technical error + context is logged with request ID for correlation
//  5. User message is written as JSON

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/core"
	"github.com/JonMunkholm/AdsExport/internal/history"
	"github.com/JonMunkholm/AdsExport/internal/legacy"
	"github.com/JonMunkholm/AdsExport/internal/logging"
	"github.com/JonMunkholm/AdsExport/internal/validate"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`

	// Validation is set when strict mode refuses an export.
	Validation *validate.Result `json:"validation,omitempty"`
}

// respondError logs the technical error server-side and writes a
// user-friendly JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	logger := logging.Enrich(r.Context(), s.logger)
	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Int("status", statusCode),
		zap.String("code", userMsg.Code),
		zap.Error(err),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request error", fields...)
	} else {
		logger.Info("request rejected", fields...)
	}

	resp := errorResponse(userMsg)
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		resp.Validation = &verr.Result
	}
	writeStatusJSON(w, statusCode, resp)
}

// respondErrorJSON writes a JSON error response without request logging.
func respondErrorJSON(w http.ResponseWriter, err error, statusCode int) {
	writeStatusJSON(w, statusCode, errorResponse(core.MapError(err)))
}

func errorResponse(msg core.UserMessage) ErrorResponse {
	return ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}
}

// statusFor picks the HTTP status for an error returned by the service.
func statusFor(err error) int {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrEmptyBody), errors.Is(err, legacy.ErrInvalidJSON):
		return http.StatusBadRequest
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrTooManyExports):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeStatusJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
