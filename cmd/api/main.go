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

	"github.com/kurihiro0119/github-profile-advisor/internal/advisor"
	"github.com/kurihiro0119/github-profile-advisor/internal/analyzer"
	"github.com/kurihiro0119/github-profile-advisor/internal/api"
	"github.com/kurihiro0119/github-profile-advisor/internal/collector"
	"github.com/kurihiro0119/github-profile-advisor/internal/config"
	"github.com/kurihiro0119/github-profile-advisor/internal/metrics"
	"github.com/kurihiro0119/github-profile-advisor/internal/rating"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	m := metrics.New()
	rateTracker := collector.NewRateTracker()

	// Initialize collector
	coll, err := collector.NewGitHubCollector(cfg.GitHubToken, collector.Options{
		BaseURL:     cfg.GitHubAPIURL,
		Timeout:     cfg.UpstreamTimeout,
		RateTracker: rateTracker,
		Metrics:     m,
	})
	if err != nil {
		log.Fatalf("Failed to initialize GitHub collector: %v", err)
	}

	// Initialize analyzer
	a := analyzer.NewAnalyzer(coll, rating.NewEngine(), advisor.NewAdvisor(), m)

	// Initialize handler
	handler := api.NewHandler(a, rateTracker)

	// Setup routes
	router := api.SetupRoutes(handler, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("Starting API server on %s (upstream timeout %s)", cfg.Addr(), cfg.UpstreamTimeout)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down API server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
