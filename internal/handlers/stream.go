package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketcrown/backend-go/internal/models"
)

type marketSnapshot struct {
	TsISO   string               `json:"tsISO"`
	Region  string               `json:"region"`
	Indices []models.MarketIndex `json:"indices"`
	Crypto  []models.CryptoPrice `json:"crypto"`
	Error   string               `json:"error,omitempty"`
}

// StreamMarkets pushes the region's index cards and the crypto list as
// server-sent events. Every tick reads through the entry cache.
func (a *API) StreamMarkets(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	region := strings.TrimSpace(q.Get("region"))
	if region == "" {
		region = models.RegionUSA
	}
	intervalSec := parseIntParam(q.Get("interval"), 30, 5, 300)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	send := func() {
		ctx, cancel := timeboxed(r, a.cfg.RequestTimeout)
		defer cancel()
		snap := marketSnapshot{TsISO: nowISO(), Region: region, Crypto: a.svc.Crypto(ctx)}
		indices, err := a.svc.Indices(ctx, region)
		if err != nil {
			snap.Error = err.Error()
			indices = []models.MarketIndex{}
		}
		snap.Indices = indices
		data, _ := json.Marshal(snap)
		_, _ = fmt.Fprintf(w, "event: markets\ndata: %s\n\n", data)
		flusher.Flush()
	}

	send()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			send()
		}
	}
}

func parseIntParam(v string, def int, min int, max int) int {
	if v == "" {
		return def
	}
	var out int
	_, err := fmt.Sscanf(v, "%d", &out)
	if err != nil {
		return def
	}
	if out < min {
		return min
	}
	if out > max {
		return max
	}
	return out
}
