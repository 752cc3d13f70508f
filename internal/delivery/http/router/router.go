package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ishaan-vashist/YC-News-validator/internal/delivery/http/handler"
	"github.com/ishaan-vashist/YC-News-validator/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)
	mux.HandleFunc("POST /api/scrape", h.HandleScrape)
	mux.HandleFunc("GET /api/results", h.HandleResults)
	mux.HandleFunc("GET /api/status", h.HandleStatus)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.CORS(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)

	return chainedHandler
}
