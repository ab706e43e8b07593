package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/assessment"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/config"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/db"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/extraction"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/guardrail"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/logger"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/pipeline"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/retrieval"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/scoring"
)

// app holds the wired components for one process.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	client llm.Client // nil when no API key is configured
	store  *db.DB     // nil when no database is configured
	runner *pipeline.Runner
}

// buildApp loads configuration and wires the pipeline. Missing collaborators
// (API key, database) put their components into degraded mode instead of
// failing startup.
func buildApp(ctx context.Context, jsonLog bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(jsonLog, verbose || cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		a.client = client
	} else {
		log.Warn("no API key configured, running in degraded mode")
	}

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("failed to connect to database, continuing without persistence", zap.Error(err))
		} else if err := store.InitSchema(ctx); err != nil {
			log.Warn("failed to init database schema, continuing without persistence", zap.Error(err))
			store.Close()
		} else {
			a.store = store
		}
	}

	var embedder retrieval.Embedder
	if a.client != nil {
		embedder = a.client
	}
	index := retrieval.New(cfg.GuidelinesDir, embedder, log)

	var saver guardrail.Saver
	if a.store != nil {
		saver = a.store
	}

	a.runner = pipeline.NewRunner(pipeline.Deps{
		Extractor: extraction.NewExtractor(a.client, log),
		Engine:    scoring.NewEngine(a.client, log),
		Generator: assessment.NewGenerator(a.client, index, log),
		Guardrail: guardrail.NewStage(saver, log),
	}, log)

	return a, nil
}

// close releases the app's resources.
func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	_ = a.log.Sync()
}
