package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/flashgen-server/internal/mocks"
	"github.com/dtroode/flashgen-server/internal/model"
	"github.com/dtroode/flashgen-server/internal/testutil"
)

var caller = model.Identity{UserID: uuid.MustParse("6f1c1c0e-3c55-4d4e-9f3b-0c2d7c6e8a11")}

func serve(h func(http.ResponseWriter, *http.Request, model.Identity), r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r, caller)
	return rec
}

func TestMethods_ServeAuthenticated(t *testing.T) {
	t.Parallel()

	m := Methods{
		http.MethodPost: func(w http.ResponseWriter, r *http.Request, _ model.Identity) { w.WriteHeader(http.StatusOK) },
		http.MethodGet:  func(w http.ResponseWriter, r *http.Request, _ model.Identity) { w.WriteHeader(http.StatusOK) },
	}

	rec := httptest.NewRecorder()
	m.ServeAuthenticated(rec, httptest.NewRequest(http.MethodPost, "/api/topics", nil), caller)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	m.ServeAuthenticated(rec, httptest.NewRequest(http.MethodDelete, "/api/topics", nil), caller)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"Method DELETE Not Allowed"}`, rec.Body.String())
}

func TestTopic_Create(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()

	tests := []struct {
		name     string
		body     string
		setup    func(*mocks.TopicService)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: `{"topic":"  Photosynthesis "}`,
			setup: func(s *mocks.TopicService) {
				s.On("Create", mock.Anything, caller.UserID, "Photosynthesis").Return(
					model.Topic{ID: topicID},
					[]model.Flashcard{{ID: uuid.New(), TopicID: topicID, Question: "q", Answer: "a"}},
					nil,
				)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "too short",
			body:     `{"topic":"ab"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Topic must be at least 3 characters long"}`,
		},
		{
			name:     "too long",
			body:     `{"topic":"` + strings.Repeat("x", 101) + `"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Topic must be less than 100 characters long"}`,
		},
		{
			name:     "not a string",
			body:     `{"topic":["a"]}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Topic must be a string"}`,
		},
		{
			name: "generation fails",
			body: `{"topic":"Photosynthesis"}`,
			setup: func(s *mocks.TopicService) {
				s.On("Create", mock.Anything, caller.UserID, "Photosynthesis").
					Return(model.Topic{ID: topicID}, nil, errors.New("generation failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Error submitting topic and generating flashcards","details":"generation failed"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTopicService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewTopic(svc, testutil.MakeNoopLogger())

			rec := serve(h.Create, httptest.NewRequest(http.MethodPost, "/api/topics", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.setup == nil {
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			}
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"topicId":"`+topicID.String()+`"`)
				assert.Contains(t, rec.Body.String(), `"flashcards":[`)
			}
		})
	}
}

func TestTopic_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewTopicService(t)
	svc.On("List", mock.Anything, caller.UserID, "photo").Return([]model.Topic{{Text: "Photosynthesis"}}, nil)

	rec := serve(NewTopic(svc, testutil.MakeNoopLogger()).List, httptest.NewRequest(http.MethodGet, "/api/topics?q=photo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"topic":"Photosynthesis"`)
}

func TestFlashcard_List(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()

	tests := []struct {
		name     string
		topicID  string
		svcErr   error
		callsSvc bool
		wantCode int
		wantBody string
	}{
		{name: "ok", topicID: topicID.String(), callsSvc: true, wantCode: http.StatusOK},
		{name: "bad id", topicID: "nope", wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid topicId"}`},
		{name: "not found", topicID: topicID.String(), callsSvc: true, svcErr: model.ErrNotFound, wantCode: http.StatusNotFound, wantBody: `{"error":"Topic not found"}`},
		{name: "generation error", topicID: topicID.String(), callsSvc: true, svcErr: model.ErrGeneration, wantCode: http.StatusInternalServerError, wantBody: `{"error":"Error generating flashcards"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewFlashcardService(t)
			if tt.callsSvc {
				svc.On("ListForTopic", mock.Anything, caller.UserID, topicID).Return([]model.Flashcard{}, tt.svcErr)
			}

			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/flashcards/"+tt.topicID, nil), map[string]string{"topicId": tt.topicID})
			rec := serve(NewFlashcard(svc, testutil.MakeNoopLogger()).List, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, `{"flashcards":[]}`, rec.Body.String())
			}
		})
	}
}

func TestQuiz_Generate(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	quizID := uuid.New()
	body := `{"topicId":"` + topicID.String() + `"}`

	tests := []struct {
		name     string
		body     string
		quiz     model.Quiz
		svcErr   error
		callsSvc bool
		wantCode int
		wantBody string
	}{
		{
			name:     "ok",
			body:     body,
			quiz:     model.Quiz{ID: quizID, Questions: []model.QuizQuestion{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}}},
			callsSvc: true,
			wantCode: http.StatusOK,
			wantBody: `{"quizId":"` + quizID.String() + `","quiz":[{"question":"q","options":["a","b","c","d"],"correctAnswer":"a"}]}`,
		},
		{name: "invalid topic id", body: `{"topicId":5}`, wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid topicId"}`},
		{name: "no flashcards", body: body, callsSvc: true, svcErr: model.ErrNoFlashcards, wantCode: http.StatusNotFound, wantBody: `{"error":"No flashcards found for this topic"}`},
		{name: "unknown topic", body: body, callsSvc: true, svcErr: model.ErrNotFound, wantCode: http.StatusNotFound, wantBody: `{"error":"Topic not found"}`},
		{name: "invalid format", body: body, callsSvc: true, svcErr: model.ErrInvalidQuizFormat, wantCode: http.StatusInternalServerError, wantBody: `{"error":"Error generating quiz"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewQuizService(t)
			if tt.callsSvc {
				svc.On("Generate", mock.Anything, caller.UserID, topicID).Return(tt.quiz, tt.svcErr)
			}

			rec := serve(NewQuiz(svc, testutil.MakeNoopLogger()).Generate, httptest.NewRequest(http.MethodPost, "/api/quizzes/generate", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestQuiz_List(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	svc := mocks.NewQuizService(t)
	svc.On("List", mock.Anything, caller.UserID, topicID).Return([]model.Quiz{}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/quizzes/"+topicID.String(), nil), map[string]string{"topicId": topicID.String()})
	rec := serve(NewQuiz(svc, testutil.MakeNoopLogger()).List, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"quizzes":[]}`, rec.Body.String())
}

func TestProgress_Update(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()

	tests := []struct {
		name     string
		body     string
		svcErr   error
		callsSvc bool
		wantCode int
		wantBody string
	}{
		{name: "ok", body: `{"topicId":"` + topicID.String() + `","score":3}`, callsSvc: true, wantCode: http.StatusOK},
		{name: "score as string", body: `{"topicId":"` + topicID.String() + `","score":"3"}`, wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid topicId or score"}`},
		{name: "store error", body: `{"topicId":"` + topicID.String() + `","score":3}`, callsSvc: true, svcErr: errors.New("db down"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"Error updating progress"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewProgressService(t)
			if tt.callsSvc {
				svc.On("Update", mock.Anything, caller.UserID, topicID, float64(3)).
					Return(model.Progress{UserID: caller.UserID, TopicID: topicID, Score: 3}, tt.svcErr)
			}

			rec := serve(NewProgress(svc, testutil.MakeNoopLogger()).Update, httptest.NewRequest(http.MethodPost, "/api/progress/update", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"score":3`)
			}
		})
	}
}

func TestProgress_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProgressService(t)
	svc.On("List", mock.Anything, caller.UserID).Return([]model.Progress{}, nil)

	rec := serve(NewProgress(svc, testutil.MakeNoopLogger()).List, httptest.NewRequest(http.MethodGet, "/api/progress", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"progress":[]}`, rec.Body.String())
}

func TestRecommendation(t *testing.T) {
	t.Parallel()

	items := []model.RecommendationItem{{Title: "Next", Description: "Try the quiz again"}}

	t.Run("generate", func(t *testing.T) {
		svc := mocks.NewRecommendationService(t)
		svc.On("Generate", mock.Anything, caller.UserID).Return(model.Recommendation{Items: items}, nil)

		rec := serve(NewRecommendation(svc, testutil.MakeNoopLogger()).Generate, httptest.NewRequest(http.MethodGet, "/api/recommendations/generate", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"recommendations":[{"title":"Next","description":"Try the quiz again"}]}`, rec.Body.String())
	})

	t.Run("generate fails", func(t *testing.T) {
		svc := mocks.NewRecommendationService(t)
		svc.On("Generate", mock.Anything, caller.UserID).Return(model.Recommendation{}, model.ErrGeneration)

		rec := serve(NewRecommendation(svc, testutil.MakeNoopLogger()).Generate, httptest.NewRequest(http.MethodGet, "/api/recommendations/generate", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Error generating recommendations"}`, rec.Body.String())
	})

	t.Run("latest", func(t *testing.T) {
		svc := mocks.NewRecommendationService(t)
		svc.On("Latest", mock.Anything, caller.UserID).Return(model.Recommendation{Items: items}, nil)

		rec := serve(NewRecommendation(svc, testutil.MakeNoopLogger()).Latest, httptest.NewRequest(http.MethodGet, "/api/recommendations", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDashboard_Get(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewDashboardService(t)
		svc.On("Load", mock.Anything, caller.UserID).Return(model.Dashboard{
			Topics:          []model.Topic{},
			Progress:        []model.Progress{},
			Recommendations: []model.RecommendationItem{},
		}, nil)

		rec := serve(NewDashboard(svc, testutil.MakeNoopLogger()).Get, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"topics":[],"progress":[],"recommendations":[]}`, rec.Body.String())
	})

	t.Run("any failure", func(t *testing.T) {
		svc := mocks.NewDashboardService(t)
		svc.On("Load", mock.Anything, caller.UserID).Return(model.Dashboard{}, model.ErrNotFound)

		rec := serve(NewDashboard(svc, testutil.MakeNoopLogger()).Get, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch data"}`, rec.Body.String())
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{name: "up", wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "down", pingErr: errors.New("refused"), wantCode: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := mocks.NewPinger(t)
			p.On("Ping", mock.Anything).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			NewHealth(p, testutil.MakeNoopLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
