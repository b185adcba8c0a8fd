// Package request decodes and validates API request bodies.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

const (
	msgInvalidBody       = "Invalid request body"
	msgTopicNotString    = "Topic must be a string"
	msgTopicTooShort     = "Topic must be at least 3 characters long"
	msgTopicTooLong      = "Topic must be less than 100 characters long"
	msgInvalidTopicID    = "Invalid topicId"
	msgInvalidTopicScore = "Invalid topicId or score"
)

var validate = validator.New()

// CreateTopic is a validated topic submission. Topic is trimmed.
type CreateTopic struct {
	Topic string
}

// GenerateQuiz is a validated quiz generation request.
type GenerateQuiz struct {
	TopicID uuid.UUID
}

// UpdateProgress is a validated score update.
type UpdateProgress struct {
	TopicID uuid.UUID
	Score   float64
}

func decode(w http.ResponseWriter, r *http.Request, dst any) *apiErrors.APIError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return apiErrors.NewErrInvalidInput(msgInvalidBody)
	}
	// exactly one JSON value per body
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apiErrors.NewErrInvalidInput(msgInvalidBody)
	}
	return nil
}

// DecodeCreateTopic reads {topic}.
func DecodeCreateTopic(w http.ResponseWriter, r *http.Request) (CreateTopic, error) {
	var raw struct {
		Topic any `json:"topic"`
	}
	if err := decode(w, r, &raw); err != nil {
		return CreateTopic{}, err
	}

	topic, ok := raw.Topic.(string)
	if !ok {
		return CreateTopic{}, apiErrors.NewErrInvalidInput(msgTopicNotString)
	}

	topic = strings.TrimSpace(topic)
	if validate.Var(topic, "min=3") != nil {
		return CreateTopic{}, apiErrors.NewErrInvalidInput(msgTopicTooShort)
	}
	if validate.Var(topic, "max=100") != nil {
		return CreateTopic{}, apiErrors.NewErrInvalidInput(msgTopicTooLong)
	}

	return CreateTopic{Topic: topic}, nil
}

// DecodeGenerateQuiz reads {topicId}.
func DecodeGenerateQuiz(w http.ResponseWriter, r *http.Request) (GenerateQuiz, error) {
	var raw struct {
		TopicID any `json:"topicId"`
	}
	if err := decode(w, r, &raw); err != nil {
		return GenerateQuiz{}, err
	}

	s, ok := raw.TopicID.(string)
	if !ok {
		return GenerateQuiz{}, apiErrors.NewErrInvalidInput(msgInvalidTopicID)
	}

	id, err := ParseTopicID(s)
	if err != nil {
		return GenerateQuiz{}, err
	}

	return GenerateQuiz{TopicID: id}, nil
}

// DecodeUpdateProgress reads {topicId, score}.
func DecodeUpdateProgress(w http.ResponseWriter, r *http.Request) (UpdateProgress, error) {
	var raw struct {
		TopicID any `json:"topicId"`
		Score   any `json:"score"`
	}
	if err := decode(w, r, &raw); err != nil {
		return UpdateProgress{}, err
	}

	s, okID := raw.TopicID.(string)
	score, okScore := raw.Score.(float64)
	if !okID || !okScore || validate.Var(s, "uuid") != nil {
		return UpdateProgress{}, apiErrors.NewErrInvalidInput(msgInvalidTopicScore)
	}

	return UpdateProgress{TopicID: uuid.MustParse(s), Score: score}, nil
}

// ParseTopicID validates a topic id taken from a body or a path.
func ParseTopicID(s string) (uuid.UUID, error) {
	if validate.Var(s, "required,uuid") != nil {
		return uuid.Nil, apiErrors.NewErrInvalidInput(msgInvalidTopicID)
	}
	return uuid.MustParse(s), nil
}
