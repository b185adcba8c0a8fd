package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecommendationStore defines persistence operations for recommendations.
type RecommendationStore interface {
	Create(ctx context.Context, rec Recommendation) (Recommendation, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (Recommendation, error)
}

// Recommendation is one generated batch of learning suggestions.
type Recommendation struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Items     []RecommendationItem `json:"recommendation_content"`
	CreatedAt time.Time            `json:"created_at"`
}

// RecommendationItem is a suggested next learning action.
type RecommendationItem struct {
	Title       string `json:"title" validate:"required" jsonschema:"minLength=1"`
	Description string `json:"description" validate:"required" jsonschema:"minLength=1"`
}
