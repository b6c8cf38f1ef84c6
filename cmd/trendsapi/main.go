package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trendpulse/internal/config"
	"trendpulse/internal/sentiment"
	"trendpulse/internal/server"
	"trendpulse/internal/upstream"
)

func main() {
	// Load .env if present; deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.XBearerToken == "" {
		log.Fatal("X_BEARER_TOKEN is required. Set it in the environment or a .env file.")
	}

	analyzer := sentiment.NewClient(cfg)
	if !analyzer.Enabled() {
		log.Println("SENTIMENT_API_URL is not set. Trending posts are served without sentiment scores.")
	}

	srv := server.NewAPI(cfg)
	srv.RegisterTrendsAPIRoutes(upstream.NewSearchClient(cfg), analyzer)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Trends API started on %s", cfg.APIAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
