package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/handlers"
	"marketcrown/backend-go/internal/metrics"
	"marketcrown/backend-go/internal/services"
)

func NewRouter(cfg config.Config, cache services.Cache, svc *services.MarketService, log logrus.FieldLogger) http.Handler {
	api := handlers.New(cfg, cache, svc, log)

	r := mux.NewRouter()
	r.HandleFunc("/api/health", api.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/news", api.News).Methods(http.MethodGet)
	r.HandleFunc("/api/indices", api.Indices).Methods(http.MethodGet)
	r.HandleFunc("/api/indices/india-market", api.IndiaMarket).Methods(http.MethodGet)
	r.HandleFunc("/api/crypto", api.Crypto).Methods(http.MethodGet)
	r.HandleFunc("/api/blogs/{country}/{date}", api.Blog).Methods(http.MethodGet)
	r.HandleFunc("/api/stream/markets", api.StreamMarkets).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.Use(withRecovery(log))
	r.Use(withLogging(log))
	r.Use(withRateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))

	// CORS wraps the router so preflight requests are answered before method matching.
	return withCORS(r)
}
