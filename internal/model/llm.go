package model

import (
	"context"
	"io"
)

// Completer sends a single prompt to a language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Archive keeps generation transcripts as objects.
type Archive interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
}
