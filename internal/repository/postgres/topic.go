package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.TopicStore = (*TopicRepository)(nil)

type TopicRepository struct {
	db *Connection
}

func NewTopicRepository(db *Connection) *TopicRepository {
	return &TopicRepository{
		db: db,
	}
}

func (r *TopicRepository) Create(ctx context.Context, topic model.Topic) (model.Topic, error) {
	query := `
		INSERT INTO topics (user_id, topic)
		VALUES ($1, $2)
		RETURNING id, user_id, topic, created_at`

	var saved model.Topic
	err := r.db.QueryRow(ctx, query, topic.UserID, topic.Text).Scan(
		&saved.ID, &saved.UserID, &saved.Text, &saved.CreatedAt,
	)
	if err != nil {
		return model.Topic{}, fmt.Errorf("failed to insert topic: %w", err)
	}

	return saved, nil
}

// GetByID finds a topic owned by userID. Topics of other users are reported as not found.
func (r *TopicRepository) GetByID(ctx context.Context, userID, topicID uuid.UUID) (model.Topic, error) {
	query := `
		SELECT id, user_id, topic, created_at
		FROM topics
		WHERE id = $1 AND user_id = $2`

	var topic model.Topic
	err := r.db.QueryRow(ctx, query, topicID, userID).Scan(
		&topic.ID, &topic.UserID, &topic.Text, &topic.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Topic{}, model.ErrNotFound
		}
		return model.Topic{}, fmt.Errorf("failed to select topic: %w", err)
	}

	return topic, nil
}

func (r *TopicRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Topic, error) {
	query := `
		SELECT id, user_id, topic, created_at
		FROM topics
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select topics: %w", err)
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	return topics, rows.Err()
}
