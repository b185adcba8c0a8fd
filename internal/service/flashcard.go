package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type Flashcard struct {
	topicStore     model.TopicStore
	flashcardStore model.FlashcardStore
	generator      FlashcardGenerator
	logger         *logger.Logger
}

func NewFlashcard(
	topicStore model.TopicStore,
	flashcardStore model.FlashcardStore,
	generator FlashcardGenerator,
	logger *logger.Logger,
) *Flashcard {
	return &Flashcard{
		topicStore:     topicStore,
		flashcardStore: flashcardStore,
		generator:      generator,
		logger:         logger,
	}
}

// ListForTopic returns the topic's flashcards, generating them when none are stored.
func (s *Flashcard) ListForTopic(ctx context.Context, userID, topicID uuid.UUID) ([]model.Flashcard, error) {
	topic, err := s.topicStore.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	cards, err := s.flashcardStore.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}
	if len(cards) > 0 {
		return cards, nil
	}

	s.logger.Info("Flashcard service: no flashcards stored, generating", "topic_id", topic.ID)

	drafts, err := s.generator.Flashcards(ctx, topic.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate flashcards: %w", err)
	}

	cards, err = s.flashcardStore.BulkCreate(ctx, topic.ID, drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcards: %w", err)
	}

	return cards, nil
}
