package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stocksavvy/stocksavvy/internal/database"
	"github.com/stocksavvy/stocksavvy/internal/logging"
	"github.com/stocksavvy/stocksavvy/internal/payment"
	"github.com/stocksavvy/stocksavvy/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	logger := logging.Setup(os.Getenv("STOCKSAVVY_LOG_LEVEL"))

	port := os.Getenv("STOCKSAVVY_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("STOCKSAVVY_DB_PATH")
	if dbPath == "" {
		dbPath = "stocksavvy.db"
	}

	jwtSecret := os.Getenv("STOCKSAVVY_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("STOCKSAVVY_JWT_SECRET must be set")
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	cfg := server.Config{
		JWTSecret: jwtSecret,
		Gateway: payment.Config{
			KeyID:     os.Getenv("STOCKSAVVY_GATEWAY_KEY_ID"),
			KeySecret: os.Getenv("STOCKSAVVY_GATEWAY_KEY_SECRET"),
		},
	}
	if cfg.Gateway.KeySecret == "" {
		logger.Warn("no payment gateway secret configured, signature verification disabled")
	}

	srv := server.New(db, cfg, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("stocksavvy api listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Periodically drop expired rate limiter windows.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			srv.RateLimiter().Cleanup()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
