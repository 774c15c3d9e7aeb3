package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/services"
)

type API struct {
	cfg   config.Config
	cache services.Cache
	svc   *services.MarketService
	log   logrus.FieldLogger
}

func New(cfg config.Config, cache services.Cache, svc *services.MarketService, log logrus.FieldLogger) *API {
	return &API{
		cfg:   cfg,
		cache: cache,
		svc:   svc,
		log:   log,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// timeboxed bounds a request's upstream work. Live fetches are additionally
// bounded by the HTTP client timeout.
func timeboxed(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(r.Context())
	}
	// fan-out waits for every symbol, so allow one client timeout plus slack
	return context.WithTimeout(r.Context(), d+2*time.Second)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
