package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuizOptionCount is the number of options every quiz question carries.
const QuizOptionCount = 4

// QuizStore defines persistence operations for quizzes.
type QuizStore interface {
	Create(ctx context.Context, quiz Quiz) (Quiz, error)
	ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]Quiz, error)
}

// Quiz is one generated set of multiple-choice questions for a topic.
// Every generation request appends a new Quiz.
type Quiz struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	TopicID   uuid.UUID      `json:"topic_id"`
	Questions []QuizQuestion `json:"quiz_content"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question" validate:"required" jsonschema:"minLength=1"`
	Options       []string `json:"options" validate:"len=4,dive,required" jsonschema:"minItems=4,maxItems=4"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required" jsonschema:"minLength=1,description=Must be identical to one of the options"`
}
