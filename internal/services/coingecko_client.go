package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

const (
	sourceCoinGecko = "coingecko"
	maxCryptoAssets = 100
)

type CoinGeckoClient struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	clock   Clock
	log     logrus.FieldLogger
}

func NewCoinGeckoClient(cfg config.Config, hc *http.Client, clock Clock, log logrus.FieldLogger) *CoinGeckoClient {
	if clock == nil {
		clock = SystemClock
	}
	return &CoinGeckoClient{
		hc:      hc,
		baseURL: strings.TrimRight(cfg.CoinGeckoBaseURL, "/"),
		apiKey:  cfg.CoinGeckoAPIKey,
		clock:   clock,
		log:     log,
	}
}

type coinGeckoMarket struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// Markets lists the top assets by market cap. limit is clamped to 1..100.
func (c *CoinGeckoClient) Markets(ctx context.Context, limit int) Result[[]models.CryptoPrice] {
	res := c.markets(ctx, limit)
	if !res.Ok() {
		logFailure(c.log, sourceCoinGecko, "", res.Err)
	}
	return res
}

func (c *CoinGeckoClient) markets(ctx context.Context, limit int) Result[[]models.CryptoPrice] {
	if limit <= 0 || limit > maxCryptoAssets {
		limit = maxCryptoAssets
	}
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	var header http.Header
	if c.apiKey != "" {
		header = http.Header{}
		header.Set("x-cg-demo-api-key", c.apiKey)
	}
	body, err := getUpstream(ctx, c.hc, sourceCoinGecko, c.baseURL+"/api/v3/coins/markets?"+q.Encode(), header)
	if err != nil {
		return failure[[]models.CryptoPrice](sourceCoinGecko, "", err)
	}

	var payload []coinGeckoMarket
	if err := json.Unmarshal(body, &payload); err != nil {
		return failure[[]models.CryptoPrice](sourceCoinGecko, "", fmt.Errorf("decode markets: %w", err))
	}

	now := c.clock.Now().UTC()
	out := make([]models.CryptoPrice, 0, min(len(payload), limit))
	for _, m := range payload {
		if len(out) >= limit {
			break
		}
		if m.CurrentPrice == nil || m.Symbol == "" {
			continue
		}
		change := 0.0
		if m.PriceChangePercentage24h != nil {
			change = *m.PriceChangePercentage24h
		}
		out = append(out, models.CryptoPrice{
			ID:        uuid.NewString(),
			Symbol:    strings.ToUpper(m.Symbol),
			Name:      m.Name,
			Price:     formatUSD(*m.CurrentPrice),
			Change24h: formatPercent(change),
			UpdatedAt: now,
		})
	}
	return success(sourceCoinGecko, "", out)
}
