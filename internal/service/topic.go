package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type Topic struct {
	topicStore     model.TopicStore
	flashcardStore model.FlashcardStore
	generator      FlashcardGenerator
	logger         *logger.Logger
}

func NewTopic(
	topicStore model.TopicStore,
	flashcardStore model.FlashcardStore,
	generator FlashcardGenerator,
	logger *logger.Logger,
) *Topic {
	return &Topic{
		topicStore:     topicStore,
		flashcardStore: flashcardStore,
		generator:      generator,
		logger:         logger,
	}
}

// Create stores a topic, then generates and stores its flashcards.
// The two inserts are not atomic: a generation or insert failure leaves
// the topic in place without flashcards.
func (s *Topic) Create(ctx context.Context, userID uuid.UUID, text string) (model.Topic, []model.Flashcard, error) {
	topic, err := s.topicStore.Create(ctx, model.Topic{UserID: userID, Text: text})
	if err != nil {
		return model.Topic{}, nil, fmt.Errorf("failed to create topic: %w", err)
	}

	drafts, err := s.generator.Flashcards(ctx, topic.Text)
	if err != nil {
		s.logger.Error("Topic service: flashcard generation failed", "topic_id", topic.ID, "error", err)
		return topic, nil, fmt.Errorf("failed to generate flashcards: %w", err)
	}

	cards, err := s.flashcardStore.BulkCreate(ctx, topic.ID, drafts)
	if err != nil {
		return topic, nil, fmt.Errorf("failed to create flashcards: %w", err)
	}

	s.logger.Info("Topic service: topic created", "topic_id", topic.ID, "flashcards", len(cards))

	return topic, cards, nil
}

// List returns the user's topics, optionally narrowed by a fuzzy query.
func (s *Topic) List(ctx context.Context, userID uuid.UUID, query string) ([]model.Topic, error) {
	topics, err := s.topicStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	if query == "" {
		return topics, nil
	}

	return lo.Filter(topics, func(t model.Topic, _ int) bool {
		return fuzzy.MatchFold(query, t.Text)
	}), nil
}
