// Package study holds the client-side state of a study session: topic
// submission, the flashcard viewer and the quiz runner.
package study

import "errors"

var (
	ErrBusy          = errors.New("submission already in progress")
	ErrEmptyDeck     = errors.New("no flashcards available for this topic")
	ErrNoQuestions   = errors.New("no quiz questions available")
	ErrNoSelection   = errors.New("select an answer first")
	ErrUnknownOption = errors.New("option is not offered for this question")
	ErrQuizCompleted = errors.New("quiz already completed")
)
