package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/flashgen-server/internal/api/errors"
	"github.com/dtroode/flashgen-server/internal/api/http/request"
	"github.com/dtroode/flashgen-server/internal/api/http/response"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

const msgCreateTopicFailed = "Error submitting topic and generating flashcards"

type TopicService interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (model.Topic, []model.Flashcard, error)
	List(ctx context.Context, userID uuid.UUID, query string) ([]model.Topic, error)
}

type Topic struct {
	service TopicService
	logger  *logger.Logger
}

func NewTopic(service TopicService, logger *logger.Logger) *Topic {
	return &Topic{service: service, logger: logger}
}

type createTopicResponse struct {
	TopicID    uuid.UUID         `json:"topicId"`
	Flashcards []model.Flashcard `json:"flashcards"`
}

// Create handles POST /api/topics.
func (h *Topic) Create(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	req, err := request.DecodeCreateTopic(w, r)
	if err != nil {
		handleError(w, err, apiErrors.NewErrInternal(msgCreateTopicFailed), h.logger)
		return
	}

	topic, cards, err := h.service.Create(r.Context(), identity.UserID, req.Topic)
	if err != nil {
		h.logger.Error("Topic handler: create failed", "user_id", identity.UserID, "topic_id", topic.ID, "error", err)
		response.Error(w, apiErrors.NewErrInternal(msgCreateTopicFailed).WithDetails(err.Error()))
		return
	}

	response.JSON(w, http.StatusOK, createTopicResponse{TopicID: topic.ID, Flashcards: cards})
}

type listTopicsResponse struct {
	Topics []model.Topic `json:"topics"`
}

// List handles GET /api/topics?q=.
func (h *Topic) List(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	topics, err := h.service.List(r.Context(), identity.UserID, r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, err, apiErrors.NewErrInternal("Error fetching topics"), h.logger)
		return
	}

	response.JSON(w, http.StatusOK, listTopicsResponse{Topics: topics})
}
