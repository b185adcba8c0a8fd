package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type Quiz struct {
	topicStore     model.TopicStore
	flashcardStore model.FlashcardStore
	quizStore      model.QuizStore
	generator      QuizGenerator
	logger         *logger.Logger
}

func NewQuiz(
	topicStore model.TopicStore,
	flashcardStore model.FlashcardStore,
	quizStore model.QuizStore,
	generator QuizGenerator,
	logger *logger.Logger,
) *Quiz {
	return &Quiz{
		topicStore:     topicStore,
		flashcardStore: flashcardStore,
		quizStore:      quizStore,
		generator:      generator,
		logger:         logger,
	}
}

// Generate builds a new quiz from the topic's flashcards and appends it.
func (s *Quiz) Generate(ctx context.Context, userID, topicID uuid.UUID) (model.Quiz, error) {
	topic, err := s.topicStore.GetByID(ctx, userID, topicID)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to get topic: %w", err)
	}

	cards, err := s.flashcardStore.ListByTopic(ctx, topic.ID)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to list flashcards: %w", err)
	}
	if len(cards) == 0 {
		return model.Quiz{}, model.ErrNoFlashcards
	}

	questions, err := s.generator.Quiz(ctx, topic.Text, cards)
	if err != nil {
		s.logger.Error("Quiz service: quiz generation failed", "topic_id", topic.ID, "error", err)
		return model.Quiz{}, fmt.Errorf("failed to generate quiz: %w", err)
	}

	quiz, err := s.quizStore.Create(ctx, model.Quiz{
		UserID:    userID,
		TopicID:   topic.ID,
		Questions: questions,
	})
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to create quiz: %w", err)
	}

	return quiz, nil
}

// List returns every quiz generated for the topic, newest first.
func (s *Quiz) List(ctx context.Context, userID, topicID uuid.UUID) ([]model.Quiz, error) {
	if _, err := s.topicStore.GetByID(ctx, userID, topicID); err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	quizzes, err := s.quizStore.ListByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return quizzes, nil
}
