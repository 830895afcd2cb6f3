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

	"github.com/scrapwale/scrapwale-be/internal/api"
	"github.com/scrapwale/scrapwale-be/internal/auth"
	"github.com/scrapwale/scrapwale-be/internal/config"
	"github.com/scrapwale/scrapwale-be/internal/logger"
	"github.com/scrapwale/scrapwale-be/internal/services"
	"github.com/scrapwale/scrapwale-be/internal/storage"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Ensure the directory for uploaded pickup images exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Set up the in-memory store; the admin account is seeded at construction
	store, err := storage.New(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	store.InitializeRates()

	// Set up sessions
	sessions := auth.NewManager([]byte(cfg.SessionSecret), cfg.Production)

	// Set up services
	eventService := services.NewEventService(store)
	authService := services.NewAuthService(store)
	rateService := services.NewRateService(store, eventService)
	pickupService := services.NewPickupService(store, eventService, cfg.UploadDir)
	statsService := services.NewStatsService(store)

	// Set up router
	router := api.NewRouter(sessions, authService, rateService, pickupService, eventService, statsService, cfg.UploadDir)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
