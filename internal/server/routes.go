package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trendpulse/internal/handlers"
	"trendpulse/internal/handlers/api"
	"trendpulse/internal/poller"
	"trendpulse/internal/sentiment"
	"trendpulse/internal/upstream"
)

// RegisterDashboardRoutes registers the dashboard page, the state API, and
// the operational endpoints.
func (s *Server) RegisterDashboardRoutes(p *poller.Poller) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, p)
	probeHandler := handlers.NewProbeHandler(p)

	// Frontend routes
	s.App.Get("/", dashboardHandler.Show)
	s.App.Get("/api/state", dashboardHandler.State)

	// Kubernetes probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Prometheus scrape endpoint
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// RegisterTrendsAPIRoutes registers the JSON API the dashboard polls.
func (s *Server) RegisterTrendsAPIRoutes(search *upstream.SearchClient, analyzer *sentiment.Client) {
	trendsHandler := api.NewTrendsHandler(s.Cfg, search, analyzer)

	s.App.Get("/", trendsHandler.Home)
	s.App.Get("/healthz", trendsHandler.Healthz)
	s.App.Get("/api/trending", trendsHandler.Trending)
	s.App.Post("/api/fetch_and_analyze", trendsHandler.Analyze)
}
