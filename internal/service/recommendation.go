package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type Recommendation struct {
	topicStore          model.TopicStore
	progressStore       model.ProgressStore
	recommendationStore model.RecommendationStore
	generator           RecommendationGenerator
	logger              *logger.Logger
}

func NewRecommendation(
	topicStore model.TopicStore,
	progressStore model.ProgressStore,
	recommendationStore model.RecommendationStore,
	generator RecommendationGenerator,
	logger *logger.Logger,
) *Recommendation {
	return &Recommendation{
		topicStore:          topicStore,
		progressStore:       progressStore,
		recommendationStore: recommendationStore,
		generator:           generator,
		logger:              logger,
	}
}

// Generate asks the model for new recommendations and stores them.
func (s *Recommendation) Generate(ctx context.Context, userID uuid.UUID) (model.Recommendation, error) {
	progress, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to list progress: %w", err)
	}

	topics, err := s.topicStore.ListByUser(ctx, userID)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to list topics: %w", err)
	}

	items, err := s.generator.Recommendations(ctx, topics, progress)
	if err != nil {
		s.logger.Error("Recommendation service: generation failed", "user_id", userID, "error", err)
		return model.Recommendation{}, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	rec, err := s.recommendationStore.Create(ctx, model.Recommendation{UserID: userID, Items: items})
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to create recommendation: %w", err)
	}

	return rec, nil
}

// Latest returns the most recently stored recommendations, or an empty
// batch when none were generated yet.
func (s *Recommendation) Latest(ctx context.Context, userID uuid.UUID) (model.Recommendation, error) {
	rec, err := s.recommendationStore.LatestByUser(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Recommendation{UserID: userID, Items: []model.RecommendationItem{}}, nil
	}
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to get latest recommendation: %w", err)
	}

	return rec, nil
}
