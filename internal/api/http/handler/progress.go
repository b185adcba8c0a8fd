package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/request"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type ProgressService interface {
	Update(ctx context.Context, userID, topicID uuid.UUID, score float64) (model.Progress, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Progress, error)
}

type Progress struct {
	service ProgressService
	logger  *logger.Logger
}

func NewProgress(service ProgressService, logger *logger.Logger) *Progress {
	return &Progress{service: service, logger: logger}
}

type updateProgressResponse struct {
	Progress model.Progress `json:"progress"`
}

// Update handles POST /api/progress/update.
func (h *Progress) Update(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	fallback := apiErrors.NewErrInternal("Error updating progress")

	req, err := request.DecodeUpdateProgress(w, r)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	progress, err := h.service.Update(r.Context(), identity.UserID, req.TopicID, req.Score)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, updateProgressResponse{Progress: progress})
}

type listProgressResponse struct {
	Progress []model.Progress `json:"progress"`
}

// List handles GET /api/progress.
func (h *Progress) List(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	progress, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err, apiErrors.NewErrInternal("Error fetching progress"), h.logger)
		return
	}

	response.JSON(w, http.StatusOK, listProgressResponse{Progress: progress})
}
