package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewmate/internal/app"
	"interviewmate/internal/config"
	"interviewmate/internal/handlers"
	"interviewmate/internal/jobs"
	"interviewmate/internal/metrics"
	imw "interviewmate/internal/middleware"
	"interviewmate/internal/routers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func registerRoutes(router *chi.Mux, a *app.App) {
	requireAuth := imw.RequireAuth(a.Sessions)

	routers.HealthRoutes(router, handlers.NewHealthHandler(a.Provider, a.Prompts, a.Store, a.Config))
	routers.AuthRoutes(router, handlers.NewAuthHandler(a.Sessions, a.Live, a.Logger), requireAuth)
	routers.InterviewRoutes(router,
		handlers.NewInterviewHandler(a.Interviews, a.Logger),
		handlers.NewSessionHandler(a.Live, a.Logger),
		requireAuth)
	routers.AccountRoutes(router,
		handlers.NewStatsHandler(a.Interviews, a.Achievements, a.Settings, a.Logger),
		handlers.NewChecklistHandler(a.Checklist, a.Logger),
		handlers.NewSettingsHandler(a.Settings, a.Data, a.Live, a.Logger),
		requireAuth)
}

// requestTimeout bounds a request, including a slow AI reply. The write
// timeout stays above it so a reply that arrives in time reaches the client.
const requestTimeout = 60 * time.Second

// http server with timeouts
func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newRouter(a *app.App) *chi.Mux {
	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.Config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(requestTimeout))
	router.Use(metrics.Middleware)

	registerRoutes(router, a)
	return router
}

func main() {
	configPath := flag.String("config", "", "config file path (default config.yaml or $INTERVIEWMATE_CONFIG)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Gemini.Model),
		zap.String("storage", cfg.Storage.Driver))
	if cfg.Gemini.APIKey == "" {
		logger.Warn("No Gemini API key configured; interview replies will explain how to set one")
	}

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	backupJob := jobs.NewBackupJob(a.Data, a.Sessions, cfg.Backup, logger)
	if err := backupJob.Start(); err != nil {
		logger.Error("Failed to start backup job", zap.Error(err))
	}

	serverAddr := ":" + cfg.Server.Port

	server := newServer(serverAddr, newRouter(a))

	// starting server in a goroutine
	go func() {
		logger.Info("InterviewMate server starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("InterviewMate server shutting down...")

	backupJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("InterviewMate server exited")
}
