package postgres

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.FlashcardStore = (*FlashcardRepository)(nil)

type FlashcardRepository struct {
	db *Connection
}

func NewFlashcardRepository(db *Connection) *FlashcardRepository {
	return &FlashcardRepository{
		db: db,
	}
}

func (r *FlashcardRepository) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]model.Flashcard, error) {
	query := `
		SELECT id, topic_id, question, answer, position, created_at
		FROM flashcards
		WHERE topic_id = $1
		ORDER BY position, created_at`

	rows, err := r.db.Query(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to select flashcards: %w", err)
	}
	defer rows.Close()

	cards := []model.Flashcard{}
	for rows.Next() {
		var c model.Flashcard
		if err := rows.Scan(&c.ID, &c.TopicID, &c.Question, &c.Answer, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// BulkCreate inserts all drafts in one statement, numbered in input order.
func (r *FlashcardRepository) BulkCreate(ctx context.Context, topicID uuid.UUID, drafts []model.FlashcardDraft) ([]model.Flashcard, error) {
	if len(drafts) == 0 {
		return []model.Flashcard{}, nil
	}

	query := `
		INSERT INTO flashcards (topic_id, question, answer, position)
		SELECT $1::uuid, d.question, d.answer, (d.ord - 1)::int
		FROM unnest($2::text[], $3::text[]) WITH ORDINALITY AS d(question, answer, ord)
		RETURNING id, topic_id, question, answer, position, created_at`

	questions := lo.Map(drafts, func(d model.FlashcardDraft, _ int) string { return d.Question })
	answers := lo.Map(drafts, func(d model.FlashcardDraft, _ int) string { return d.Answer })

	rows, err := r.db.Query(ctx, query, topicID, questions, answers)
	if err != nil {
		return nil, fmt.Errorf("failed to insert flashcards: %w", err)
	}
	defer rows.Close()

	cards := make([]model.Flashcard, 0, len(drafts))
	for rows.Next() {
		var c model.Flashcard
		if err := rows.Scan(&c.ID, &c.TopicID, &c.Question, &c.Answer, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to insert flashcards: %w", err)
	}

	slices.SortFunc(cards, func(a, b model.Flashcard) int { return cmp.Compare(a.Position, b.Position) })

	return cards, nil
}
