package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/flashgen-server/internal/api/http/handler"
	"github.com/dtroode/flashgen-server/internal/api/http/middleware"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// Services bundles everything the API routes delegate to.
type Services struct {
	Topics          handler.TopicService
	Flashcards      handler.FlashcardService
	Quizzes         handler.QuizService
	Progress        handler.ProgressService
	Recommendations handler.RecommendationService
	Dashboard       handler.DashboardService
}

// Router builds the HTTP API.
type Router struct {
	services       Services
	tokenService   middleware.TokenService
	db             model.Pinger
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	tokenService middleware.TokenService,
	db model.Pinger,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		tokenService:   tokenService,
		db:             db,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register returns the root handler. Every /api route authenticates before
// method dispatch, so unauthenticated requests never reach a service.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()
	m.Handle("/healthz", handler.NewHealth(r.db, r.logger))

	api := m.PathPrefix("/api").Subrouter()
	r.registerTopicRoutes(api)
	r.registerQuizRoutes(api)
	r.registerProgressRoutes(api)
	r.registerRecommendationRoutes(api)

	logging := middleware.NewLogging(r.logger)
	cors := middleware.NewCORS(r.allowedOrigins)

	return logging.Handle(cors.Handle(m))
}

func (r *Router) auth() *middleware.Authenticate {
	return middleware.NewAuthenticate(r.tokenService, r.logger)
}

func (r *Router) registerTopicRoutes(api *mux.Router) {
	auth := r.auth()
	topics := handler.NewTopic(r.services.Topics, r.logger)
	flashcards := handler.NewFlashcard(r.services.Flashcards, r.logger)

	api.Handle("/topics", auth.Wrap(handler.Methods{
		http.MethodPost: topics.Create,
		http.MethodGet:  topics.List,
	}))
	api.Handle("/flashcards/{topicId}", auth.Wrap(handler.Methods{
		http.MethodGet: flashcards.List,
	}))
}

func (r *Router) registerQuizRoutes(api *mux.Router) {
	auth := r.auth()
	quizzes := handler.NewQuiz(r.services.Quizzes, r.logger)

	// generate must win over the {topicId} pattern.
	api.Handle("/quizzes/generate", auth.Wrap(handler.Methods{
		http.MethodPost: quizzes.Generate,
	}))
	api.Handle("/quizzes/{topicId}", auth.Wrap(handler.Methods{
		http.MethodGet: quizzes.List,
	}))
}

func (r *Router) registerProgressRoutes(api *mux.Router) {
	auth := r.auth()
	progress := handler.NewProgress(r.services.Progress, r.logger)

	api.Handle("/progress/update", auth.Wrap(handler.Methods{
		http.MethodPost: progress.Update,
	}))
	api.Handle("/progress", auth.Wrap(handler.Methods{
		http.MethodGet: progress.List,
	}))
}

func (r *Router) registerRecommendationRoutes(api *mux.Router) {
	auth := r.auth()
	recs := handler.NewRecommendation(r.services.Recommendations, r.logger)
	dashboard := handler.NewDashboard(r.services.Dashboard, r.logger)

	api.Handle("/recommendations/generate", auth.Wrap(handler.Methods{
		http.MethodGet: recs.Generate,
	}))
	api.Handle("/recommendations", auth.Wrap(handler.Methods{
		http.MethodGet: recs.Latest,
	}))
	api.Handle("/dashboard", auth.Wrap(handler.Methods{
		http.MethodGet: dashboard.Get,
	}))
}
