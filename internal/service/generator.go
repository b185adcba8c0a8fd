package service

import (
	"context"

	"github.com/dtroode/flashgen-server/internal/model"
)

// FlashcardGenerator generates flashcards for a topic.
type FlashcardGenerator interface {
	Flashcards(ctx context.Context, topic string) ([]model.FlashcardDraft, error)
}

// QuizGenerator generates quiz questions from stored flashcards.
type QuizGenerator interface {
	Quiz(ctx context.Context, topic string, cards []model.Flashcard) ([]model.QuizQuestion, error)
}

// RecommendationGenerator suggests learning steps from a user's topics and scores.
type RecommendationGenerator interface {
	Recommendations(ctx context.Context, topics []model.Topic, progress []model.Progress) ([]model.RecommendationItem, error)
}
