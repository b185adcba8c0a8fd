package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/flashgen-server/internal/config"
)

func TestOpenAI_Complete(t *testing.T) {
	var gotModel, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model
		assert.Equal(t, "hello", req.Messages[len(req.Messages)-1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"[1,2]"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI("sk-test", srv.URL+"/v1", "mixtral-8x7b-32768", 256)
	out, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", out)
	assert.Equal(t, "mixtral-8x7b-32768", gotModel)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "openai:mixtral-8x7b-32768", c.Name())
}

func TestOpenAI_Complete_Errors(t *testing.T) {
	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
		}))
		defer srv.Close()

		_, err := NewOpenAI("k", srv.URL, "m", 10).Complete(context.Background(), "p")
		assert.Error(t, err)
	})

	t.Run("upstream rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		_, err := NewOpenAI("k", srv.URL, "m", 10).Complete(context.Background(), "p")
		assert.Error(t, err)
	})
}

func TestAnthropic_Complete(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		gotKey = r.Header.Get("X-Api-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",` +
			`"content":[{"type":"text","text":"[{\"title\":\"t\"}]"}],` +
			`"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":5}}`))
	}))
	defer srv.Close()

	c := NewAnthropic("ak-test", srv.URL+"/", "claude-3-5-haiku-latest", 128)
	out, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"t"}]`, out)
	assert.Equal(t, "ak-test", gotKey)
}

func TestAnthropic_Complete_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer srv.Close()

	_, err := NewAnthropic("k", srv.URL+"/", "m", 10).Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantName string
		wantErr  bool
	}{
		{name: "openai", provider: config.ProviderOpenAI, wantName: "openai:m"},
		{name: "anthropic", provider: config.ProviderAnthropic, wantName: "anthropic:m"},
		{name: "unknown", provider: "llama", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, closeFn, err := New(context.Background(), config.LLM{Provider: tt.provider, APIKey: "k", Model: "m", MaxTokens: 1})
			require.NotNil(t, closeFn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
			assert.NoError(t, closeFn())
		})
	}
}
