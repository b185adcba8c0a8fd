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

type RecommendationService interface {
	Generate(ctx context.Context, userID uuid.UUID) (model.Recommendation, error)
	Latest(ctx context.Context, userID uuid.UUID) (model.Recommendation, error)
}

type Recommendation struct {
	service RecommendationService
	logger  *logger.Logger
}

func NewRecommendation(service RecommendationService, logger *logger.Logger) *Recommendation {
	return &Recommendation{service: service, logger: logger}
}

type recommendationsResponse struct {
	Recommendations []model.RecommendationItem `json:"recommendations"`
}

// Generate handles GET /api/recommendations/generate.
func (h *Recommendation) Generate(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	rec, err := h.service.Generate(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err, apiErrors.NewErrInternal("Error generating recommendations"), h.logger)
		return
	}

	response.JSON(w, http.StatusOK, recommendationsResponse{Recommendations: rec.Items})
}

// Latest handles GET /api/recommendations.
func (h *Recommendation) Latest(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	rec, err := h.service.Latest(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err, apiErrors.NewErrInternal("Error fetching recommendations"), h.logger)
		return
	}

	response.JSON(w, http.StatusOK, recommendationsResponse{Recommendations: rec.Items})
}
