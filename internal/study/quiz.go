package study

import (
	"slices"

	"github.com/dtroode/flashgen-server/internal/model"
)

// QuizRunner walks a quiz one question at a time and keeps the score.
type QuizRunner struct {
	questions []model.QuizQuestion
	index     int
	selected  string
	score     int
	completed bool
}

func NewQuizRunner(questions []model.QuizQuestion) (*QuizRunner, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &QuizRunner{questions: questions}, nil
}

// Current returns the question being answered and its 1-based number.
func (q *QuizRunner) Current() (model.QuizQuestion, int) {
	return q.questions[q.index], q.index + 1
}

// Select records option as the answer to the current question. It may be
// changed until Advance.
func (q *QuizRunner) Select(option string) error {
	if q.completed {
		return ErrQuizCompleted
	}
	if !slices.Contains(q.questions[q.index].Options, option) {
		return ErrUnknownOption
	}
	q.selected = option
	return nil
}

func (q *QuizRunner) Selected() (string, bool) {
	return q.selected, q.selected != ""
}

// Advance scores the selected answer by exact match and moves on. After
// the last question the runner is completed for good.
func (q *QuizRunner) Advance() error {
	if q.completed {
		return ErrQuizCompleted
	}
	if q.selected == "" {
		return ErrNoSelection
	}

	if q.selected == q.questions[q.index].CorrectAnswer {
		q.score++
	}
	q.selected = ""

	if q.index+1 < len(q.questions) {
		q.index++
	} else {
		q.completed = true
	}
	return nil
}

// IsLast reports whether Advance will finish the quiz.
func (q *QuizRunner) IsLast() bool { return q.index == len(q.questions)-1 }

func (q *QuizRunner) Completed() bool { return q.completed }

func (q *QuizRunner) Score() int { return q.score }

func (q *QuizRunner) Total() int { return len(q.questions) }
