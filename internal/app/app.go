// Package app wires the stores, repositories and interview engine that
// both binaries share.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"interviewmate/internal/config"
	"interviewmate/internal/interview"
	"interviewmate/internal/llm"
	_ "interviewmate/internal/llm/gemini"
	"interviewmate/internal/metrics"
	"interviewmate/internal/prompts"
	"interviewmate/internal/repositories"
	"interviewmate/internal/session"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger

	Store    store.Store
	Provider llm.Provider
	Prompts  *prompts.PromptManager

	Sessions     *session.Manager
	Achievements *repositories.AchievementRepository
	Interviews   *repositories.InterviewRepository
	Checklist    *repositories.ChecklistRepository
	Settings     *repositories.SettingsRepository
	Data         *repositories.DataRepository
	Live         *interview.Registry

	closeStore func() error
}

type Option func(*options)

type options struct {
	store    store.Store
	provider llm.Provider
	recorder interview.Recorder
}

// WithStore skips opening the configured backend.
func WithStore(s store.Store) Option {
	return func(o *options) { o.store = s }
}

// WithProvider skips the provider registry.
func WithProvider(p llm.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithRecorder replaces the Prometheus recorder.
func WithRecorder(r interview.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	logger = utils.OrNop(logger)

	o := options{recorder: metrics.Recorder{}}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Logger: logger, closeStore: func() error { return nil }}

	if o.store != nil {
		a.Store = o.store
	} else {
		s, closeFn, err := store.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		a.Store, a.closeStore = s, closeFn
	}

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}
	a.Prompts = promptManager

	if o.provider != nil {
		a.Provider = o.provider
	} else {
		provider, err := llm.NewProvider(cfg)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize AI provider: %w", err)
		}
		a.Provider = provider
	}

	a.Achievements = repositories.NewAchievementRepository(a.Store, logger)
	a.Interviews = repositories.NewInterviewRepository(a.Store, a.Achievements, logger)
	a.Checklist = repositories.NewChecklistRepository(a.Store, logger)
	a.Settings = repositories.NewSettingsRepository(a.Store, logger)
	a.Data = repositories.NewDataRepository(a.Store, a.Interviews, a.Settings, logger)
	a.Sessions = session.NewManager(a.Store, a.Interviews, cfg.Auth, logger)
	a.Live = interview.NewRegistry(a.Interviews, interview.Deps{
		Provider: a.Provider,
		Prompts:  a.Prompts,
		Recorder: o.recorder,
		Logger:   logger,
	})

	logger.Info("application initialized",
		zap.String("provider", a.Provider.GetProviderName()),
		zap.String("storage", cfg.Storage.Driver))
	return a, nil
}

// Close releases the store backend.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
