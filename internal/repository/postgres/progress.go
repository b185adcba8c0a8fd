package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.ProgressStore = (*ProgressRepository)(nil)

type ProgressRepository struct {
	db *Connection
}

func NewProgressRepository(db *Connection) *ProgressRepository {
	return &ProgressRepository{
		db: db,
	}
}

func (r *ProgressRepository) Upsert(ctx context.Context, progress model.Progress) (model.Progress, error) {
	query := `
		INSERT INTO progress (user_id, topic_id, score, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, topic_id) DO UPDATE
		SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at
		RETURNING user_id, topic_id, score, updated_at`

	var saved model.Progress
	err := r.db.QueryRow(ctx, query, progress.UserID, progress.TopicID, progress.Score, progress.UpdatedAt).Scan(
		&saved.UserID, &saved.TopicID, &saved.Score, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Progress{}, fmt.Errorf("failed to upsert progress: %w", err)
	}

	return saved, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Progress, error) {
	query := `
		SELECT user_id, topic_id, score, updated_at
		FROM progress
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select progress: %w", err)
	}
	defer rows.Close()

	out := []model.Progress{}
	for rows.Next() {
		var p model.Progress
		if err := rows.Scan(&p.UserID, &p.TopicID, &p.Score, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
