package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/workouts/internal/api"
	"example.com/workouts/internal/auth"
	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/observability"
	httptransport "example.com/workouts/internal/transport/http"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[workouts-api] ", log.LstdFlags)

	service := domain.NewService(
		domain.WithLogger(logger),
		domain.WithRecorder(observability.NewRecorder(prometheus.DefaultRegisterer)),
		domain.WithConcurrency(cfg.BatchConcurrency),
	)

	handler := api.NewHandler(service, cfg.MaxBatchSize)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, auth.PublicPaths)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, httptransport.LogRequests(logger, authMiddleware.Wrap(mux)))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}
