package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type Progress struct {
	topicStore    model.TopicStore
	progressStore model.ProgressStore
	now           func() time.Time
	logger        *logger.Logger
}

func NewProgress(
	topicStore model.TopicStore,
	progressStore model.ProgressStore,
	now func() time.Time,
	logger *logger.Logger,
) *Progress {
	if now == nil {
		now = time.Now
	}
	return &Progress{
		topicStore:    topicStore,
		progressStore: progressStore,
		now:           now,
		logger:        logger,
	}
}

// Update records the latest score of the user for the topic.
func (s *Progress) Update(ctx context.Context, userID, topicID uuid.UUID, score float64) (model.Progress, error) {
	if _, err := s.topicStore.GetByID(ctx, userID, topicID); err != nil {
		return model.Progress{}, fmt.Errorf("failed to get topic: %w", err)
	}

	progress, err := s.progressStore.Upsert(ctx, model.Progress{
		UserID:    userID,
		TopicID:   topicID,
		Score:     score,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return model.Progress{}, fmt.Errorf("failed to upsert progress: %w", err)
	}

	return progress, nil
}

func (s *Progress) List(ctx context.Context, userID uuid.UUID) ([]model.Progress, error) {
	progress, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	return progress, nil
}
