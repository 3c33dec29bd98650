package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"paisa/internal/advisor"
	"paisa/internal/amqp"
	"paisa/internal/auth"
	"paisa/internal/config"
	"paisa/internal/core"
	apphttp "paisa/internal/http"
	"paisa/internal/log"
	"paisa/internal/report"
	"paisa/internal/services"
	"paisa/internal/storage"
	"paisa/internal/store"
	"paisa/internal/voice"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Choose data backend (default: memory, seeded with demo transactions).
	var txStore store.Store
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		txStore = repo
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		txStore = store.NewMemorySeeded()
		logger.Info("Initialized memory backend")
	}

	// AMQP publishing is optional: without a URL, mutations stay local-only.
	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("AMQP publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	var adv *advisor.Advisor
	if cfg.OpenAIAPIKey != "" {
		adv = advisor.New(cfg.OpenAIAPIKey)
		logger.Info("Chat advisor enabled")
	} else {
		logger.Info("Chat advisor disabled - no OPENAI_API_KEY provided, fallback replies only")
	}

	parserCfg := voice.DefaultConfig()
	parserCfg.Threshold = cfg.ConfidenceThreshold

	svc := services.NewTransactionService(txStore, publisher)
	engine := report.NewEngine(core.Money{Cents: cfg.MonthlyBudgetCents})

	srv := apphttp.NewServer(":"+cfg.Port, svc, voice.NewParser(parserCfg), engine, adv, auth.NewService())

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting paisa server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
