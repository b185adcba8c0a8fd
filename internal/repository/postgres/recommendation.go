package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.RecommendationStore = (*RecommendationRepository)(nil)

type RecommendationRepository struct {
	db *Connection
}

func NewRecommendationRepository(db *Connection) *RecommendationRepository {
	return &RecommendationRepository{
		db: db,
	}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec model.Recommendation) (model.Recommendation, error) {
	content, err := json.Marshal(rec.Items)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to marshal recommendation content: %w", err)
	}

	query := `
		INSERT INTO recommendations (user_id, recommendation_content)
		VALUES ($1, $2::jsonb)
		RETURNING id, created_at`

	saved := rec
	if err := r.db.QueryRow(ctx, query, rec.UserID, string(content)).Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to insert recommendation: %w", err)
	}

	return saved, nil
}

func (r *RecommendationRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (model.Recommendation, error) {
	query := `
		SELECT id, user_id, recommendation_content, created_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var (
		rec     model.Recommendation
		content []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(&rec.ID, &rec.UserID, &content, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recommendation{}, model.ErrNotFound
		}
		return model.Recommendation{}, fmt.Errorf("failed to select recommendation: %w", err)
	}

	if err := json.Unmarshal(content, &rec.Items); err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to decode recommendation content: %w", err)
	}

	return rec, nil
}
