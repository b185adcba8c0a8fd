package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/flashgen-server/internal/model"
)

// RecommendationSource produces fresh recommendations for a user.
type RecommendationSource interface {
	Generate(ctx context.Context, userID uuid.UUID) (model.Recommendation, error)
}

type Dashboard struct {
	topicStore      model.TopicStore
	progressStore   model.ProgressStore
	recommendations RecommendationSource
}

func NewDashboard(
	topicStore model.TopicStore,
	progressStore model.ProgressStore,
	recommendations RecommendationSource,
) *Dashboard {
	return &Dashboard{
		topicStore:      topicStore,
		progressStore:   progressStore,
		recommendations: recommendations,
	}
}

// Load fetches topics, progress and recommendations concurrently. The first
// failure cancels the others and nothing partial is returned.
func (s *Dashboard) Load(ctx context.Context, userID uuid.UUID) (model.Dashboard, error) {
	var d model.Dashboard

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		topics, err := s.topicStore.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list topics: %w", err)
		}
		d.Topics = topics
		return nil
	})

	g.Go(func() error {
		progress, err := s.progressStore.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}
		d.Progress = progress
		return nil
	})

	g.Go(func() error {
		rec, err := s.recommendations.Generate(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to generate recommendations: %w", err)
		}
		d.Recommendations = rec.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	return d, nil
}
