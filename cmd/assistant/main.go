package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twiddles/voice-assistant/config"
	httpdelivery "github.com/twiddles/voice-assistant/internal/delivery/http"
	"github.com/twiddles/voice-assistant/internal/delivery/tools"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
	"github.com/twiddles/voice-assistant/internal/infrastructure/gemini"
	"github.com/twiddles/voice-assistant/internal/infrastructure/livekit"
	"github.com/twiddles/voice-assistant/internal/infrastructure/mongodb"
	"github.com/twiddles/voice-assistant/internal/infrastructure/storage"
	"github.com/twiddles/voice-assistant/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store connection is owned here and released on shutdown; it is
	// shared by every request for the process lifetime.
	var repo repository.CommerceRepository
	switch cfg.StorageBackend {
	case config.BackendMongo:
		store := mongodb.NewClient(cfg.MongoUsername, cfg.MongoPassword, cfg.MongoURL, cfg.MongoDatabase, logger)
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		err := store.Connect(connectCtx)
		cancel()
		if err != nil {
			logger.Error("failed to connect to store", "error", err)
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = store.Disconnect(disconnectCtx)
		}()
		repo = mongodb.NewCommerceRepository(store, logger)
	default:
		logger.Info("using in-memory storage backend")
		repo = storage.NewMemoryCommerceRepository()
	}

	commerce := usecase.NewCommerceUseCase(repo)
	toolHandler := tools.NewHandler(commerce, logger)

	agent, err := gemini.NewAgent(cfg.GeminiAPIKey, cfg.GeminiModel, usecase.AgentInstructions, tools.Declarations())
	if err != nil {
		logger.Error("failed to create agent", "error", err)
		os.Exit(1)
	}

	sessions := usecase.NewSessionUseCase(agent, commerce, toolHandler, cfg.MaxContextTurns)

	issuer := livekit.NewTokenIssuer(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	rooms := livekit.NewRoomServiceClient(cfg.LiveKitURL, issuer)

	server := httpdelivery.NewServer(cfg.Port, issuer, rooms, sessions, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}
}
