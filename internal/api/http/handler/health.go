package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports whether the database is reachable.
type Health struct {
	checker model.HealthChecker
	logger  *logger.Logger
}

func NewHealth(checker model.HealthChecker, logger *logger.Logger) *Health {
	return &Health{checker: checker, logger: logger}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database unreachable",
			"error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
