package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
)

// handleError writes err as a {"message": ...} response. Errors that are not
// an APIError are reported as 500 and their cause is only logged.
func handleError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	apiErr, ok := apiErrors.As(err)
	if !ok {
		apiErr = apiErrors.NewErrInternalServerError(err)
	}

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"status", apiErr.HTTPCode,
		"error", err.Error(),
	}
	if apiErr.HTTPCode >= http.StatusInternalServerError {
		log.Error("request failed", attrs...)
	} else {
		log.Info("request rejected", attrs...)
	}

	writeJSON(w, apiErr.HTTPCode, messageResponse{Message: apiErr.Message})
}
