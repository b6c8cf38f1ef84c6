package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trendpulse/internal/config"
	"trendpulse/internal/metrics"
	"trendpulse/internal/poller"
	"trendpulse/internal/server"
	"trendpulse/internal/trends"
	"trendpulse/internal/validation"
)

func main() {
	// Load .env if present; deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	branding, err := config.LoadBranding()
	if err != nil {
		log.Printf("Warning: ignoring branding file: %v", err)
	}
	cfg.ApplyBranding(branding)

	if valid, msg := validation.ValidateBaseURL(cfg.TrendsAPIURL); !valid {
		log.Printf("Warning: TRENDS_API_URL: %s", msg)
		log.Println("The dashboard will show a fetch error until it is configured.")
	}

	// The poller stops when this context is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := poller.New(trends.NewClient(cfg), cfg.PollInterval)
	metrics.Init(p)
	go p.Run(ctx)

	srv := server.New(cfg)
	srv.RegisterDashboardRoutes(p)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Dashboard started on %s", cfg.DashboardAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
