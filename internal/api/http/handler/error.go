package handler

import (
	"errors"
	"net/http"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// handleError writes err to the client. Errors without a client-facing
// meaning are logged and replaced by fallback.
func handleError(w http.ResponseWriter, err error, fallback *apiErrors.APIError, logger *logger.Logger) {
	var apiErr *apiErrors.APIError
	switch {
	case errors.As(err, &apiErr):
		response.Error(w, apiErr)
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, apiErrors.NewErrTopicNotFound())
	case errors.Is(err, model.ErrNoFlashcards):
		response.Error(w, apiErrors.NewErrNoFlashcards())
	default:
		logger.Error(fallback.Message, "error", err)
		response.Error(w, fallback)
	}
}
