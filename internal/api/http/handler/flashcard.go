package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/request"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

type FlashcardService interface {
	ListForTopic(ctx context.Context, userID, topicID uuid.UUID) ([]model.Flashcard, error)
}

type Flashcard struct {
	service FlashcardService
	logger  *logger.Logger
}

func NewFlashcard(service FlashcardService, logger *logger.Logger) *Flashcard {
	return &Flashcard{service: service, logger: logger}
}

type listFlashcardsResponse struct {
	Flashcards []model.Flashcard `json:"flashcards"`
}

// List handles GET /api/flashcards/{topicId}.
func (h *Flashcard) List(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	fallback := apiErrors.NewErrInternal("Error generating flashcards")

	topicID, err := request.ParseTopicID(mux.Vars(r)["topicId"])
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	cards, err := h.service.ListForTopic(r.Context(), identity.UserID, topicID)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, listFlashcardsResponse{Flashcards: cards})
}
