package web

// errors.go turns conversion failures into JSON error responses.
//
// The technical error is logged with the request id for correlation; the
// client receives the catalogued message from core.MapError plus the input
// line the failure was found on, when there is one.

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/dexconv/internal/core"
	"github.com/JonMunkholm/dexconv/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// respondError logs err server-side and writes a user-friendly JSON response.
// A zero statusCode lets statusFor pick one from the error kind.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	if statusCode == 0 {
		statusCode = statusFor(err)
	}
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	resp := ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	}
	var ce *core.Error
	if errors.As(err, &ce) {
		resp.Line = ce.Line
	}
	writeJSON(w, statusCode, resp)
}

// statusFor maps an error to an HTTP status code.
//
//	too large input        -> 413
//	bad rows or headers    -> 422
//	no conversion slot     -> 503
//	everything else        -> 400
func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	if errors.Is(err, core.ErrFileTooLarge) || errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, core.ErrTooManyConversions) {
		return http.StatusServiceUnavailable
	}
	switch core.KindOf(err) {
	case core.KindMalformedRow,
		core.KindDuplicateHeader,
		core.KindMissingMandatoryHeader,
		core.KindMissingSpeciesValue,
		core.KindDuplicateEntity:
		return http.StatusUnprocessableEntity
	case core.KindOutputUnwritable:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
