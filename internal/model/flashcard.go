package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FlashcardStore defines persistence operations for flashcards.
type FlashcardStore interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]Flashcard, error)
	BulkCreate(ctx context.Context, topicID uuid.UUID, drafts []FlashcardDraft) ([]Flashcard, error)
}

// Flashcard is a stored question/answer pair of a topic.
type Flashcard struct {
	ID        uuid.UUID `json:"id"`
	TopicID   uuid.UUID `json:"topic_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// FlashcardDraft is a generated flashcard that has not been stored yet.
type FlashcardDraft struct {
	Question string `json:"question" validate:"required" jsonschema:"minLength=1"`
	Answer   string `json:"answer" validate:"required" jsonschema:"minLength=1"`
}
