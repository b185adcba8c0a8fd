package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	grpcHandler "github.com/dtroode/flashgen-server/internal/api/grpc/handler"
	grpcRouter "github.com/dtroode/flashgen-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/flashgen-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/flashgen-server/internal/api/http/router"
	httpServer "github.com/dtroode/flashgen-server/internal/api/http/server"
	"github.com/dtroode/flashgen-server/internal/config"
	"github.com/dtroode/flashgen-server/internal/generator"
	"github.com/dtroode/flashgen-server/internal/identity"
	"github.com/dtroode/flashgen-server/internal/llm"
	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
	"github.com/dtroode/flashgen-server/internal/repository/postgres"
	"github.com/dtroode/flashgen-server/internal/server"
	"github.com/dtroode/flashgen-server/internal/service"
	"github.com/dtroode/flashgen-server/internal/storage/minio"
	"github.com/dtroode/flashgen-server/internal/storage/supabase"
	"github.com/dtroode/flashgen-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to initialize token verifier", "error", err)
	}
	tokenService := service.NewTokenService(verifier, logger)

	completer, closeCompleter, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal("failed to initialize llm client", "error", err)
	}
	defer closeCompleter()

	archive, err := newArchive(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize transcript archive", "error", err)
	}

	gen := generator.New(completer, archive, generator.Options{
		FormatRetries: cfg.LLM.FormatRetries,
		Timeout:       cfg.LLM.Timeout,
		ArchivePrefix: cfg.Archive.Prefix,
	}, logger)
	logger.Info("generator ready", "completer", completer.Name(), "archive", cfg.Archive.Backend)

	topicRepo := postgres.NewTopicRepository(db)
	flashcardRepo := postgres.NewFlashcardRepository(db)
	quizRepo := postgres.NewQuizRepository(db)
	progressRepo := postgres.NewProgressRepository(db)
	recommendationRepo := postgres.NewRecommendationRepository(db)

	recommendationService := service.NewRecommendation(topicRepo, progressRepo, recommendationRepo, gen, logger)
	services := httpRouter.Services{
		Topics:          service.NewTopic(topicRepo, flashcardRepo, gen, logger),
		Flashcards:      service.NewFlashcard(topicRepo, flashcardRepo, gen, logger),
		Quizzes:         service.NewQuiz(topicRepo, flashcardRepo, quizRepo, gen, logger),
		Progress:        service.NewProgress(topicRepo, progressRepo, time.Now, logger),
		Recommendations: recommendationService,
		Dashboard:       service.NewDashboard(topicRepo, progressRepo, recommendationService),
	}

	handler := httpRouter.New(services, tokenService, db, cfg.CORS.AllowedOrigins, logger).Register()
	servers := []model.Server{httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))}

	if cfg.GRPC.Enabled {
		health := grpcHandler.NewHealth(db, logger)
		go health.Watch(ctx, healthCheckInterval)
		s := grpcRouter.New(health, logger).Register()
		servers = append(servers, grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func newVerifier(cfg config.Auth) (model.TokenVerifier, error) {
	if cfg.Mode == config.AuthModeIntrospect {
		return identity.NewClient(cfg.URL, cfg.AnonKey), nil
	}
	if cfg.PublicKey != "" {
		return token.NewPublicKey(cfg.PublicKey, cfg.Audience)
	}
	return token.NewHMAC(cfg.JWTSecret, cfg.Audience), nil
}

// newArchive returns nil when transcripts are disabled.
func newArchive(ctx context.Context, cfg *config.Config) (model.Archive, error) {
	switch cfg.Archive.Backend {
	case config.ArchiveMinio:
		return minio.New(ctx, cfg.Storage)
	case config.ArchiveSupabase:
		return supabase.New(cfg.Supabase), nil
	default:
		return nil, nil
	}
}
