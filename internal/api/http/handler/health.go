package handler

import (
	"net/http"

	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// Health reports database reachability without authentication.
type Health struct {
	db     model.Pinger
	logger *logger.Logger
}

func NewHealth(db model.Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Warn("Health handler: database unreachable", "error", err)
		response.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	response.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
