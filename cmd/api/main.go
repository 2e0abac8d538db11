package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/config"
	"github.com/independencecare/chatdesk/internal/handler"
	"github.com/independencecare/chatdesk/internal/logger"
	"github.com/independencecare/chatdesk/internal/model/scenario"
	"github.com/independencecare/chatdesk/internal/model/visit"
	"github.com/independencecare/chatdesk/internal/service/ai"
	"github.com/independencecare/chatdesk/internal/service/chat"
	visitservice "github.com/independencecare/chatdesk/internal/service/visit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()
	zap.ReplaceGlobals(logr)

	if envErr != nil {
		logr.Info("no .env file loaded, using system environment only", zap.Error(envErr))
	}

	scripts := scenario.NewMemoryStore(scenario.Seed())

	// Scripted replies only unless Ark credentials are present.
	var generator chat.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI, logr)
		if err != nil {
			logr.Warn("failed to initialize AI service, continuing with scripted replies", zap.Error(err))
		} else {
			generator = aiService
			logr.Info("AI service initialized", zap.String("model", cfg.AI.Model))
		}
	} else {
		logr.Info("Ark credentials not configured, skipping AI initialization")
	}

	chatService := chat.NewService(scripts, generator, logr)
	visitService := visitservice.NewService(visit.Seed(), cfg.Visit.DuplicateWindow, logr)

	router := handler.NewRouter(scripts, chatService, visitService, logr)

	startServer(ctx, cfg.Server, router, logr)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logr *zap.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logr.Info("chat backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		logr.Fatal("server error", zap.Error(err))
	}
	logr.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
