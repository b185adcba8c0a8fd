package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type DashboardService interface {
	Load(ctx context.Context, userID uuid.UUID) (model.Dashboard, error)
}

type Dashboard struct {
	service DashboardService
	logger  *logger.Logger
}

func NewDashboard(service DashboardService, logger *logger.Logger) *Dashboard {
	return &Dashboard{service: service, logger: logger}
}

// Get handles GET /api/dashboard. Any partial failure is reported the same way.
func (h *Dashboard) Get(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	d, err := h.service.Load(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Dashboard handler: load failed", "user_id", identity.UserID, "error", err)
		response.Error(w, apiErrors.NewErrInternal("Failed to fetch data"))
		return
	}

	response.JSON(w, http.StatusOK, d)
}
