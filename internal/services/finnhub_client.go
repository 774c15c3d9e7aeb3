package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

const sourceFinnhub = "finnhub"

// QuoteSource turns one ticker into a normalized index card.
type QuoteSource interface {
	Quote(ctx context.Context, region string, sym config.Symbol) Result[models.MarketIndex]
}

type FinnhubClient struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	clock   Clock
	log     logrus.FieldLogger
}

func NewFinnhubClient(cfg config.Config, hc *http.Client, clock Clock, log logrus.FieldLogger) *FinnhubClient {
	if clock == nil {
		clock = SystemClock
	}
	return &FinnhubClient{
		hc:      hc,
		baseURL: strings.TrimRight(cfg.FinnhubBaseURL, "/"),
		apiKey:  cfg.FinnhubAPIKey,
		clock:   clock,
		log:     log,
	}
}

type finnhubQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

func (c *FinnhubClient) Quote(ctx context.Context, region string, sym config.Symbol) Result[models.MarketIndex] {
	res := c.quote(ctx, region, sym)
	if !res.Ok() {
		logFailure(c.log, sourceFinnhub, sym.Symbol, res.Err)
	}
	return res
}

func (c *FinnhubClient) quote(ctx context.Context, region string, sym config.Symbol) Result[models.MarketIndex] {
	if c.apiKey == "" {
		return failure[models.MarketIndex](sourceFinnhub, sym.Symbol, ErrMissingAPIKey)
	}
	q := url.Values{}
	q.Set("symbol", sym.Symbol)
	q.Set("token", c.apiKey)
	body, err := getUpstream(ctx, c.hc, sourceFinnhub, c.baseURL+"/quote?"+q.Encode(), nil)
	if err != nil {
		return failure[models.MarketIndex](sourceFinnhub, sym.Symbol, err)
	}

	var payload finnhubQuote
	if err := json.Unmarshal(body, &payload); err != nil {
		return failure[models.MarketIndex](sourceFinnhub, sym.Symbol, fmt.Errorf("decode quote: %w", err))
	}
	if payload.Current == 0 {
		return failure[models.MarketIndex](sourceFinnhub, sym.Symbol, fmt.Errorf("%w: zero price", ErrNoData))
	}

	return success(sourceFinnhub, sym.Symbol, models.MarketIndex{
		ID:            uuid.NewString(),
		Region:        region,
		Name:          sym.Name,
		Value:         formatPrice(payload.Current),
		Change:        formatSigned(payload.Change),
		ChangePercent: formatPercent(payload.PercentChange),
		UpdatedAt:     c.clock.Now().UTC(),
	})
}
