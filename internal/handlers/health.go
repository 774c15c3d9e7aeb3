package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"marketcrown/backend-go/internal/models"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	ok := true
	deps := map[string]models.DepStatus{}
	if err := a.cache.Ping(ctx); err != nil {
		ok = false
		deps["cache"] = models.DepStatus{Ok: false, Error: err.Error()}
	} else {
		deps["cache"] = models.DepStatus{Ok: true}
	}
	store := a.svc.Store()
	if err := store.Ping(ctx); err != nil {
		ok = false
		deps["store"] = models.DepStatus{Ok: false, Error: err.Error()}
	} else {
		deps["store"] = models.DepStatus{Ok: true}
	}

	resp := models.HealthResponse{
		Ok:         ok,
		TsISO:      nowISO(),
		Service:    "marketcrown-backend",
		Version:    os.Getenv("SERVICE_VERSION"),
		Cache:      a.cache.Backend(),
		Store:      store.Backend(),
		DepsStatus: deps,
		Env: map[string]bool{
			"FINNHUB_API_KEY":       a.cfg.FinnhubAPIKey != "",
			"ALPHA_VANTAGE_API_KEY": a.cfg.AlphaVantageAPIKey != "",
			"COINGECKO_API_KEY":     a.cfg.CoinGeckoAPIKey != "",
			"DATABASE_URL":          a.cfg.DatabaseURL != "",
			"REDIS_URL":             a.cfg.RedisURL != "",
		},
	}
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
