// Package llm adapts hosted completion APIs to model.Completer.
package llm

import (
	"context"
	"fmt"

	"github.com/dtroode/flashgen-server/internal/config"
	"github.com/dtroode/flashgen-server/internal/model"
)

const systemPrompt = "You generate study material. Reply with JSON only, no prose and no markdown."

// New builds the completer selected by cfg.Provider. The returned close
// function releases provider resources and is never nil.
func New(ctx context.Context, cfg config.LLM) (model.Completer, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens), noop, nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens), noop, nil
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, noop, err
		}
		return g, g.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
