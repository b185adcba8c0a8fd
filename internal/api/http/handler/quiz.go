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

type QuizService interface {
	Generate(ctx context.Context, userID, topicID uuid.UUID) (model.Quiz, error)
	List(ctx context.Context, userID, topicID uuid.UUID) ([]model.Quiz, error)
}

type Quiz struct {
	service QuizService
	logger  *logger.Logger
}

func NewQuiz(service QuizService, logger *logger.Logger) *Quiz {
	return &Quiz{service: service, logger: logger}
}

type generateQuizResponse struct {
	QuizID uuid.UUID            `json:"quizId"`
	Quiz   []model.QuizQuestion `json:"quiz"`
}

// Generate handles POST /api/quizzes/generate.
func (h *Quiz) Generate(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	fallback := apiErrors.NewErrInternal("Error generating quiz")

	req, err := request.DecodeGenerateQuiz(w, r)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	quiz, err := h.service.Generate(r.Context(), identity.UserID, req.TopicID)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, generateQuizResponse{QuizID: quiz.ID, Quiz: quiz.Questions})
}

type listQuizzesResponse struct {
	Quizzes []model.Quiz `json:"quizzes"`
}

// List handles GET /api/quizzes/{topicId}.
func (h *Quiz) List(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	fallback := apiErrors.NewErrInternal("Error fetching quizzes")

	topicID, err := request.ParseTopicID(mux.Vars(r)["topicId"])
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	quizzes, err := h.service.List(r.Context(), identity.UserID, topicID)
	if err != nil {
		handleError(w, err, fallback, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, listQuizzesResponse{Quizzes: quizzes})
}
