package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProgressStore defines persistence operations for progress.
type ProgressStore interface {
	// Upsert keeps at most one row per (UserID, TopicID); the last write wins.
	Upsert(ctx context.Context, progress Progress) (Progress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Progress, error)
}

// Progress is the latest quiz score of a user for a topic.
type Progress struct {
	UserID    uuid.UUID `json:"user_id"`
	TopicID   uuid.UUID `json:"topic_id"`
	Score     float64   `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}
