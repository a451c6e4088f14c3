// Package app assembles the evaluator, its collaborators and the report service from config.
package app

import (
	"context"
	"fmt"

	"ai-assess/internal/adapter"
	"ai-assess/internal/adapter/judge"
	"ai-assess/internal/cache"
	"ai-assess/internal/config"
	"ai-assess/internal/database"
	"ai-assess/internal/domain"
	"ai-assess/internal/evaluator"
	"ai-assess/internal/logger"
	"ai-assess/internal/repository"
	"ai-assess/internal/service"

	"go.uber.org/zap"
)

// Components are the wired services shared by the HTTP API and the CLI.
type Components struct {
	Evaluator domain.AnswerEvaluator
	Reports   domain.ReportService
	// Cache is nil when no Redis address is configured.
	Cache           domain.Cache
	JudgeConfigured bool

	closers []func() error
}

// Close releases database and cache connections.
func (c *Components) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Build wires every component. Redis and the database are optional: without Redis
// verdicts are not cached, without a database name registration reports are unavailable.
// A judge that cannot be constructed is fatal, an unreachable cache is not.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	log := logger.Get()
	c := &Components{}

	j, err := judge.New(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create semantic judge: %w", err)
	}
	c.JudgeConfigured = j != nil
	if c.JudgeConfigured {
		log.Info("Semantic judge initialized",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model))
	} else {
		log.Warn("No semantic judge configured, free-text answers use fallback grading")
	}

	opts := []evaluator.SemanticOption{evaluator.WithLogger(logger.Named("judge"))}
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, verdict cache disabled", zap.Error(err))
		} else {
			c.closers = append(c.closers, redisClient.Close)
			c.Cache = adapter.NewRedisCacheAdapter(redisClient)
			if cfg.Evaluation.VerdictCacheTTL > 0 {
				opts = append(opts, evaluator.WithVerdictCache(
					service.NewVerdictCache(c.Cache, cfg.Evaluation.VerdictCacheTTL)))
				log.Info("Verdict cache enabled", zap.Duration("ttl", cfg.Evaluation.VerdictCacheTTL))
			}
		}
	}

	var semantic *evaluator.SemanticEvaluator
	if c.JudgeConfigured {
		semantic = evaluator.NewSemanticEvaluator(j, evaluator.SemanticConfig{
			Timeout:     cfg.LLM.Timeout,
			MaxAttempts: cfg.LLM.MaxAttempts,
			RetryDelay:  cfg.LLM.RetryDelay,
		}, opts...)
	}
	c.Evaluator = evaluator.New(semantic)

	var repo domain.ResponseRepository
	if cfg.DB.DBName != "" {
		db, err := database.NewSQLXDB(ctx, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		repo = repository.NewResponseRepository(db)
	} else {
		log.Warn("No database configured, registration reports are unavailable")
	}
	c.Reports = service.NewReportService(repo, c.Evaluator, cfg.Evaluation.BatchConcurrency)

	return c, nil
}
