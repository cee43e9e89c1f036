package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/config"
	"github.com/Aniket-Subudh1/EventSentix/internal/ingestion"
	"github.com/Aniket-Subudh1/EventSentix/internal/notifications"
	"github.com/Aniket-Subudh1/EventSentix/internal/report"
	"github.com/Aniket-Subudh1/EventSentix/internal/scheduler"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting EventSentix")

	eventStore := store.NewMemoryStore()
	reportService := report.NewService(eventStore)

	registry := ingestion.NewRegistry()
	ingestionService := ingestion.NewService(cfg, eventStore, registry)
	defer registry.StopAll()

	var notifier notifications.Notifier
	if cfg.EnableNotifications {
		notifier = notifications.NewService(cfg)
	}

	var archive store.Archiver
	if cfg.StorageAccount != "" {
		archive, err = store.NewAzureArchive(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			logrus.Fatalf("Failed to initialize report archive: %v", err)
		}
	}

	schedulerService := scheduler.NewService(cfg, eventStore, reportService, archive, notifier)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/events", createEventHandler(eventStore)).Methods("POST")
	api.HandleFunc("/events/{id}/feedback", ingestFeedbackHandler(eventStore, ingestionService)).Methods("POST")
	api.HandleFunc("/events/{id}/report", reportHandler(reportService)).Methods("GET")
	api.HandleFunc("/events/{id}/report/insights", insightsHandler(reportService)).Methods("GET")
	api.HandleFunc("/events/{id}/report/recommendations", recommendationsHandler(reportService)).Methods("GET")
	api.HandleFunc("/events/{id}/stream", startStreamHandler(ingestionService)).Methods("POST")
	api.HandleFunc("/events/{id}/stream", stopStreamHandler(ingestionService)).Methods("DELETE")
	api.HandleFunc("/streams", activeStreamsHandler(registry)).Methods("GET")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
