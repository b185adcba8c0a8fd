// Package client calls the flashgen HTTP API on behalf of a signed-in user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/model"
)

// Client is an authenticated API client. Non-2xx answers are returned as
// *apiErrors.APIError carrying the server's message.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client. A nil httpClient gets a 2 minute timeout, since
// generation requests wait on the language model.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		if json.NewDecoder(resp.Body).Decode(&e) != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &apiErrors.APIError{Status: resp.StatusCode, Message: e.Error, Details: e.Details}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CreateTopic submits a topic and returns its id with the generated flashcards.
func (c *Client) CreateTopic(ctx context.Context, topic string) (uuid.UUID, []model.Flashcard, error) {
	var out struct {
		TopicID    uuid.UUID         `json:"topicId"`
		Flashcards []model.Flashcard `json:"flashcards"`
	}
	err := c.do(ctx, http.MethodPost, "/api/topics", map[string]string{"topic": topic}, &out)
	return out.TopicID, out.Flashcards, err
}

func (c *Client) Topics(ctx context.Context, query string) ([]model.Topic, error) {
	path := "/api/topics"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var out struct {
		Topics []model.Topic `json:"topics"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Topics, err
}

func (c *Client) Flashcards(ctx context.Context, topicID uuid.UUID) ([]model.Flashcard, error) {
	var out struct {
		Flashcards []model.Flashcard `json:"flashcards"`
	}
	err := c.do(ctx, http.MethodGet, "/api/flashcards/"+topicID.String(), nil, &out)
	return out.Flashcards, err
}

// GenerateQuiz asks for a fresh quiz built from the topic's flashcards.
func (c *Client) GenerateQuiz(ctx context.Context, topicID uuid.UUID) (uuid.UUID, []model.QuizQuestion, error) {
	var out struct {
		QuizID uuid.UUID            `json:"quizId"`
		Quiz   []model.QuizQuestion `json:"quiz"`
	}
	err := c.do(ctx, http.MethodPost, "/api/quizzes/generate", map[string]string{"topicId": topicID.String()}, &out)
	return out.QuizID, out.Quiz, err
}

func (c *Client) UpdateProgress(ctx context.Context, topicID uuid.UUID, score float64) (model.Progress, error) {
	in := struct {
		TopicID string  `json:"topicId"`
		Score   float64 `json:"score"`
	}{TopicID: topicID.String(), Score: score}

	var out struct {
		Progress model.Progress `json:"progress"`
	}
	err := c.do(ctx, http.MethodPost, "/api/progress/update", in, &out)
	return out.Progress, err
}

func (c *Client) GenerateRecommendations(ctx context.Context) ([]model.RecommendationItem, error) {
	var out struct {
		Recommendations []model.RecommendationItem `json:"recommendations"`
	}
	err := c.do(ctx, http.MethodGet, "/api/recommendations/generate", nil, &out)
	return out.Recommendations, err
}

func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var out model.Dashboard
	err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out)
	return out, err
}
