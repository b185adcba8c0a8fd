package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dtroode/flashgen-server/internal/model"
)

const anthropicDefaultURL = "https://api.anthropic.com/"

var _ model.Completer = (*Anthropic)(nil)

// Anthropic talks to the Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates a client. baseURL pointing at the OpenAI-compatible
// default is ignored so one LLM_BASE_URL default can serve every provider.
func NewAnthropic(apiKey, baseURL, modelName string, maxTokens int) *Anthropic {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" && !strings.Contains(baseURL, "groq.com") && !strings.Contains(baseURL, "openai.com") {
		opts = append(opts, option.WithBaseURL(baseURL))
	} else {
		opts = append(opts, option.WithBaseURL(anthropicDefaultURL))
	}

	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     modelName,
		maxTokens: int64(maxTokens),
	}
}

func (a *Anthropic) Name() string { return "anthropic:" + a.model }

func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("message has no text content")
	}

	return sb.String(), nil
}
