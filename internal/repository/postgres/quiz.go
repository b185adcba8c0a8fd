package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.QuizStore = (*QuizRepository)(nil)

type QuizRepository struct {
	db *Connection
}

func NewQuizRepository(db *Connection) *QuizRepository {
	return &QuizRepository{
		db: db,
	}
}

// Create always inserts a new row; earlier quizzes of the topic are kept.
func (r *QuizRepository) Create(ctx context.Context, quiz model.Quiz) (model.Quiz, error) {
	content, err := json.Marshal(quiz.Questions)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to marshal quiz content: %w", err)
	}

	query := `
		INSERT INTO quizzes (user_id, topic_id, quiz_content)
		VALUES ($1, $2, $3::jsonb)
		RETURNING id, created_at`

	saved := quiz
	if err := r.db.QueryRow(ctx, query, quiz.UserID, quiz.TopicID, string(content)).Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return model.Quiz{}, fmt.Errorf("failed to insert quiz: %w", err)
	}

	return saved, nil
}

func (r *QuizRepository) ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]model.Quiz, error) {
	query := `
		SELECT id, user_id, topic_id, quiz_content, created_at
		FROM quizzes
		WHERE user_id = $1 AND topic_id = $2
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to select quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []model.Quiz{}
	for rows.Next() {
		var (
			q       model.Quiz
			content []byte
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.TopicID, &content, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		if err := json.Unmarshal(content, &q.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode quiz content: %w", err)
		}
		quizzes = append(quizzes, q)
	}

	return quizzes, rows.Err()
}
