package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/KOFI-GYIMAH/portfolio-api/docs"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/config"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/handler"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/metrics"
	md "github.com/KOFI-GYIMAH/portfolio-api/internal/middleware"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/service"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/worker"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Portfolio API
// @version 1.0.0
// @description GitHub profile statistics, activity, contributions and repositories for the portfolio site.
// @host localhost:8081
// @BasePath /
func main() {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Load configuration
	cfg, err := config.LoadConfiguration()
	if err != nil {
		logger.Error("‼️ Failed to load config: %v", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Metrics and quota tracking
	m := metrics.New()
	limits := github.NewRateLimitTracker(m)

	// * Initialize GitHub client
	githubClient := github.NewClient(
		cfg.GitHubToken,
		github.WithEndpoint(cfg.GraphQLURL),
		github.WithRetryBaseDelay(cfg.RetryBaseDelay),
		github.WithMetrics(m),
		github.WithRateLimitTracker(limits),
	)

	// * Create services
	portfolioService := service.NewPortfolioService(githubClient, cfg.GitHubUsername)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// * Start quota worker
	if cfg.GitHubToken != "" {
		quotaWorker := worker.NewQuotaWorker(worker.NewRESTClient(cfg.GitHubToken), limits, cfg.QuotaInterval)
		go quotaWorker.Run(ctx)
	}

	// * Create API server
	apiHandler := handler.NewPortfolioHandler(portfolioService, limits)
	router := mux.NewRouter()
	router.Use(md.LoggingMiddleware)
	router.Use(md.MetricsMiddleware(m))

	api := router.PathPrefix("/api").Subrouter()
	apiHandler.RegisterRoutes(api)

	router.HandleFunc("/health", apiHandler.Health).Methods("GET")
	router.Handle("/metrics", m.Handler()).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           md.CORS(cfg.SiteURL)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting API server on %s for %s", cfg.Port, cfg.GitHubUsername)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server error: %v", err)
			os.Exit(1)
		}
	}()

	// * Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
