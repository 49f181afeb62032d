package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/api"
	"github.com/health-triage-server/internal/config"
	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/history"
	"github.com/health-triage-server/internal/knowledge"
	"github.com/health-triage-server/internal/service"
	"github.com/health-triage-server/pkg/localize"
	"github.com/health-triage-server/pkg/predictor"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)

	// Knowledge base
	kb, err := knowledge.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load knowledge base")
	}

	// Assessment history
	store, err := newHistoryStore(configManager, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open assessment history store")
	}
	defer store.Close()

	// Classifier with layered cache
	var triagePredictor domain.Predictor
	var cache *predictor.CachedPredictor
	if cfg.Predictor.Enabled {
		client := predictor.NewClient(cfg.Predictor, logger)

		var redisClient *redis.Client
		if cfg.Cache.RedisEnabled {
			opts, err := redis.ParseURL(cfg.Cache.RedisURL)
			if err != nil {
				logger.WithError(err).Fatal("Failed to parse Redis URL")
			}
			opts.PoolSize = cfg.Cache.PoolSize
			opts.PoolTimeout = cfg.Cache.PoolTimeout
			opts.MaxRetries = cfg.Cache.MaxRetries
			redisClient = redis.NewClient(opts)
			defer redisClient.Close()
		}

		cache, err = predictor.NewCachedPredictor(client, cfg.Cache, redisClient, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create prediction cache")
		}
		triagePredictor = cache
	} else {
		logger.Info("Classifier disabled, running rule-only assessments")
	}

	translator := localize.NewTranslator(logger)
	triage := service.NewTriageService(kb, triagePredictor, translator, store, logger)

	server := api.NewServer(configManager, triage, kb, store, cache, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting health triage server")

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
	logger.Info("Server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(os.Stdout)
	}
	return logger
}

func newHistoryStore(configManager *config.Manager, cfg *domain.Config) (domain.HistoryStore, error) {
	if cfg.Database.Driver == "postgres" {
		return history.NewPostgresStore(configManager.GetDatabaseConnectionString())
	}
	return history.NewSQLiteStore(cfg.Database.Path)
}
