// Package generator turns stored study data into LLM prompts and validates
// what comes back.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/samber/lo"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

const (
	maxFlashcards      = 50
	maxQuizQuestions   = 50
	maxRecommendations = 10
)

// Options tunes a Generator.
type Options struct {
	// FormatRetries is how many extra completions are requested after a
	// response fails validation. Provider errors are never retried.
	FormatRetries int
	// Timeout bounds each completion call; zero means no bound.
	Timeout time.Duration
	// ArchivePrefix is prepended to transcript object keys.
	ArchivePrefix string
}

// Generator produces flashcards, quizzes and recommendations.
type Generator struct {
	completer model.Completer
	archive   model.Archive
	validate  *validator.Validate
	opts      Options
	now       func() time.Time
	logger    *logger.Logger
}

// New creates a Generator. archive may be nil to skip transcripts.
func New(completer model.Completer, archive model.Archive, opts Options, logger *logger.Logger) *Generator {
	return &Generator{
		completer: completer,
		archive:   archive,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		opts:      opts,
		now:       time.Now,
		logger:    logger,
	}
}

type flashcardBatch struct {
	Items []model.FlashcardDraft `validate:"min=1,max=50,dive"`
}

type quizBatch struct {
	Items []model.QuizQuestion `validate:"min=1,max=50,dive"`
}

type recommendationBatch struct {
	Items []model.RecommendationItem `validate:"min=1,max=10,dive"`
}

// Flashcards generates flashcards teaching topic.
func (g *Generator) Flashcards(ctx context.Context, topic string) ([]model.FlashcardDraft, error) {
	var batch flashcardBatch

	err := g.generate(ctx, "flashcards", topic, flashcardPrompt(topic), func(payload string) error {
		batch = flashcardBatch{}
		if err := json.Unmarshal([]byte(payload), &batch.Items); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidFlashcardFormat, err)
		}
		if err := g.validate.Struct(batch); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidFlashcardFormat, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch.Items, nil
}

// Quiz generates multiple-choice questions from the stored flashcards of topic.
func (g *Generator) Quiz(ctx context.Context, topic string, cards []model.Flashcard) ([]model.QuizQuestion, error) {
	prompt, err := quizPrompt(topic, cards)
	if err != nil {
		return nil, err
	}

	var batch quizBatch

	err = g.generate(ctx, "quiz", topic, prompt, func(payload string) error {
		batch = quizBatch{}
		if err := json.Unmarshal([]byte(payload), &batch.Items); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidQuizFormat, err)
		}
		if err := g.validate.Struct(batch); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidQuizFormat, err)
		}
		for i, q := range batch.Items {
			if !lo.Contains(q.Options, q.CorrectAnswer) {
				return fmt.Errorf("%w: question %d: correct answer is not one of the options", model.ErrInvalidQuizFormat, i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch.Items, nil
}

// Recommendations suggests next learning steps from a user's topics and scores.
func (g *Generator) Recommendations(ctx context.Context, topics []model.Topic, progress []model.Progress) ([]model.RecommendationItem, error) {
	prompt, err := recommendationPrompt(topics, progress)
	if err != nil {
		return nil, err
	}

	var batch recommendationBatch

	err = g.generate(ctx, "recommendations", "user", prompt, func(payload string) error {
		batch = recommendationBatch{}
		if err := json.Unmarshal([]byte(payload), &batch.Items); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidRecommendationFormat, err)
		}
		if err := g.validate.Struct(batch); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidRecommendationFormat, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch.Items, nil
}

// generate runs the completion, extraction and parse cycle, retrying on
// format errors up to the configured limit.
func (g *Generator) generate(ctx context.Context, kind, subject, prompt string, parse func(string) error) error {
	var lastErr error

	for attempt := 0; attempt <= g.opts.FormatRetries; attempt++ {
		text, err := g.complete(ctx, prompt)
		if err != nil {
			g.logger.Error("Generator: completion failed", "kind", kind, "provider", g.completer.Name(), "error", err)
			g.store(ctx, kind, subject, transcript{Prompt: prompt, Error: err.Error()})
			return fmt.Errorf("%w: %w", model.ErrGeneration, err)
		}

		payload, err := extractJSON(text)
		if err == nil {
			err = parse(payload)
		}

		t := transcript{Prompt: prompt, Response: text, Attempt: attempt}
		if err != nil {
			t.Error = err.Error()
		}
		g.store(ctx, kind, subject, t)

		if err == nil {
			return nil
		}

		lastErr = err
		if !errors.Is(err, model.ErrGenerationFormat) {
			return err
		}
		g.logger.Warn("Generator: invalid completion format", "kind", kind, "attempt", attempt, "error", err)
	}

	return lastErr
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	return g.completer.Complete(ctx, prompt)
}

type transcript struct {
	Provider  string    `json:"provider"`
	Kind      string    `json:"kind"`
	Attempt   int       `json:"attempt"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// store archives a transcript. Failures are logged only.
func (g *Generator) store(ctx context.Context, kind, subject string, t transcript) {
	if g.archive == nil {
		return
	}

	t.Provider = g.completer.Name()
	t.Kind = kind
	t.CreatedAt = g.now().UTC()

	body, err := json.Marshal(t)
	if err != nil {
		g.logger.Warn("Generator: failed to marshal transcript", "error", err)
		return
	}

	key := transcriptKey(g.opts.ArchivePrefix, kind, subject)
	if err := g.archive.Upload(ctx, key, bytes.NewReader(body)); err != nil {
		g.logger.Warn("Generator: failed to archive transcript", "key", key, "error", err)
	}
}

func transcriptKey(prefix, kind, subject string) string {
	s := slug.Make(subject)
	if s == "" {
		s = "untitled"
	}
	return path.Join(prefix, kind, s, uuid.NewString()+".json")
}
