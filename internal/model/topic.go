package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopicStore defines persistence operations for topics.
type TopicStore interface {
	Create(ctx context.Context, topic Topic) (Topic, error)
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (Topic, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Topic, error)
}

// Topic is a user-chosen subject that seeds flashcard and quiz generation.
type Topic struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}
