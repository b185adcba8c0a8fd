package generator

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"

	"github.com/dtroode/flashgen-server/internal/model"
)

const (
	flashcardCount      = 5
	quizQuestionCount   = 5
	recommendationCount = 3
)

// schemaFor returns the JSON Schema of an array of T, ready to embed in a prompt.
func schemaFor[T any]() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var items []T
	schema := reflector.Reflect(items)
	schema.Version = ""

	out, err := json.Marshal(schema)
	if err != nil {
		// Reflected schemas of plain structs always marshal.
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	return string(out)
}

var (
	flashcardSchema      = schemaFor[model.FlashcardDraft]()
	quizSchema           = schemaFor[model.QuizQuestion]()
	recommendationSchema = schemaFor[model.RecommendationItem]()
)

func flashcardPrompt(topic string) string {
	return fmt.Sprintf(
		"Create a set of %d flashcards to teach the topic: %q. "+
			"Return only a JSON array where each flashcard has \"question\" and \"answer\" fields. "+
			"The array must match this JSON Schema: %s",
		flashcardCount, topic, flashcardSchema,
	)
}

type promptCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func quizPrompt(topic string, cards []model.Flashcard) (string, error) {
	payload, err := json.Marshal(lo.Map(cards, func(c model.Flashcard, _ int) promptCard {
		return promptCard{Question: c.Question, Answer: c.Answer}
	}))
	if err != nil {
		return "", fmt.Errorf("failed to marshal flashcards: %w", err)
	}

	return fmt.Sprintf(
		"Create a quiz with %d multiple-choice questions about %q based on these flashcards: %s. "+
			"Each question must have exactly %d options and a \"correctAnswer\" that is identical to one of the options. "+
			"Return only a JSON array matching this JSON Schema: %s",
		quizQuestionCount, topic, payload, model.QuizOptionCount, quizSchema,
	), nil
}

type promptTopic struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
}

type promptProgress struct {
	TopicID string  `json:"topic_id"`
	Score   float64 `json:"score"`
}

func recommendationPrompt(topics []model.Topic, progress []model.Progress) (string, error) {
	topicJSON, err := json.Marshal(lo.Map(topics, func(t model.Topic, _ int) promptTopic {
		return promptTopic{ID: t.ID.String(), Topic: t.Text}
	}))
	if err != nil {
		return "", fmt.Errorf("failed to marshal topics: %w", err)
	}

	progressJSON, err := json.Marshal(lo.Map(progress, func(p model.Progress, _ int) promptProgress {
		return promptProgress{TopicID: p.TopicID.String(), Score: p.Score}
	}))
	if err != nil {
		return "", fmt.Errorf("failed to marshal progress: %w", err)
	}

	return fmt.Sprintf(
		"Based on the user's progress %s and their topics %s, provide %d personalized learning recommendations. "+
			"Return only a JSON array with \"title\" and \"description\" fields matching this JSON Schema: %s",
		progressJSON, topicJSON, recommendationCount, recommendationSchema,
	), nil
}
