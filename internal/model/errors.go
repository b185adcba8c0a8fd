package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a single-row lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken is returned by token verifiers for rejected tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrGeneration wraps any failure of the completion call itself.
	ErrGeneration = errors.New("generation failed")

	// ErrGenerationFormat is returned when completion text is not the expected JSON.
	ErrGenerationFormat = errors.New("generated content has invalid format")

	ErrInvalidFlashcardFormat      = fmt.Errorf("%w: flashcards", ErrGenerationFormat)
	ErrInvalidQuizFormat           = fmt.Errorf("%w: quiz", ErrGenerationFormat)
	ErrInvalidRecommendationFormat = fmt.Errorf("%w: recommendations", ErrGenerationFormat)
)

// ErrNoFlashcards is returned when a quiz is requested for a topic without flashcards.
var ErrNoFlashcards = errors.New("no flashcards for topic")
