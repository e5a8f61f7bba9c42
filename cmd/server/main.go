package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"najdimajstra/internal/bank"
	"najdimajstra/internal/config"
	"najdimajstra/internal/events"
	"najdimajstra/internal/handler"
	"najdimajstra/internal/logger"
	"najdimajstra/internal/repository"
	"najdimajstra/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("najdiMajstra triage service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	responses := bank.New()
	if missing := responses.Missing(); len(missing) > 0 {
		zl.Warn("response bank incomplete, fallbacks will be used", zap.Int("missing", len(missing)))
	}

	// Initialize database connection
	var (
		repo          *repository.PostgresRepository
		masterService *service.MasterSearchService
		lookup        service.CandidateLookup
		turnLog       service.TurnLogger
	)
	if cfg.PostgreSQL.Enabled {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			zl.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer repo.Close()
		zl.Info("connected to PostgreSQL")

		ranker := service.NewRanker(
			cfg.Ranking.WeightRating,
			cfg.Ranking.WeightReviews,
			cfg.Ranking.WeightAvailability,
		)
		masterService = service.NewMasterSearchService(repo, ranker, zl.Named("masters"))
		lookup = masterService
		if cfg.Triage.LogTurns {
			turnLog = repo
		}
	} else {
		zl.Warn("PostgreSQL disabled, conversations will run without candidate lookup")
	}

	// Initialize event publishing
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATS.Enabled {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Token, zl.Named("nats"))
		if err != nil {
			zl.Warn("NATS unavailable, turn events disabled", zap.Error(err))
		} else {
			publisher = natsPublisher
			zl.Info("publishing turn events", zap.String("subject", events.SubjectTurnProcessed))
		}
	}
	defer publisher.Close()

	// Initialize services
	dispatcher := service.NewDispatcher(responses, service.DispatcherOptions{
		Lookup:         lookup,
		LookupTimeout:  cfg.Triage.LookupTimeout,
		CandidateLimit: cfg.Triage.CandidateLimit,
		ThinkingDelay:  cfg.Triage.ThinkingDelay,
		Logger:         zl.Named("triage"),
	})
	sessions := repository.NewMemorySessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	chatService := service.NewChatService(dispatcher, sessions, turnLog, publisher, zl.Named("chat"))
	assistantService := service.NewAssistantService(&cfg.OpenAI, zl.Named("assistant"))
	if assistantService.IsEnabled() {
		zl.Info("assistant proxy enabled",
			zap.String("api_base", cfg.OpenAI.APIBase),
			zap.String("chat_model", cfg.OpenAI.ChatModel),
		)
	}

	zl.Info("services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "najdimajstra-triage",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"lookup":     lookup != nil,
			"assistant":  assistantService.IsEnabled(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		chat := apiV1.Group("/chat")
		chat.GET("/greeting", chatHandler.Greeting)
		chat.POST("/sessions", chatHandler.OpenSession)
		chat.GET("/sessions/:id", chatHandler.GetSession)
		chat.DELETE("/sessions/:id", chatHandler.CloseSession)
		chat.POST("/sessions/:id/turns", chatHandler.SubmitTurn)
		chat.POST("/sessions/:id/turns/stream", chatHandler.SubmitTurnStream) // Streaming turn
		chat.PUT("/sessions/:id/category", chatHandler.ChangeCategory)
		chat.POST("/sessions/:id/reset", chatHandler.ResetSession)

		if masterService != nil {
			masterHandler := handler.NewMasterHandler(masterService)
			embeddingHandler := handler.NewEmbeddingHandler(masterService, cfg.Embedding.Dimensions, cfg.Embedding.MaxBatch)
			feedbackHandler := handler.NewFeedbackHandler(masterService)

			apiV1.GET("/masters/:id", masterHandler.GetMaster)
			apiV1.POST("/masters/embeddings/batch", embeddingHandler.BatchUpdate)
			apiV1.POST("/feedback", feedbackHandler.Submit)
		}

		apiV1.POST("/assistant/chat", assistantHandler.Chat)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		zl.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	zl.Info("server stopped")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
