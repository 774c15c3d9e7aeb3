package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

const sourceAlphaVantage = "alphavantage"

// AlphaVantageClient derives a quote from the daily time series by comparing
// the latest close with the one before it.
type AlphaVantageClient struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	clock   Clock
	log     logrus.FieldLogger
}

func NewAlphaVantageClient(cfg config.Config, hc *http.Client, clock Clock, log logrus.FieldLogger) *AlphaVantageClient {
	if clock == nil {
		clock = SystemClock
	}
	return &AlphaVantageClient{
		hc:      hc,
		baseURL: strings.TrimRight(cfg.AlphaVantageURL, "/"),
		apiKey:  cfg.AlphaVantageAPIKey,
		clock:   clock,
		log:     log,
	}
}

func (c *AlphaVantageClient) Quote(ctx context.Context, region string, sym config.Symbol) Result[models.MarketIndex] {
	res := c.quote(ctx, region, sym)
	if !res.Ok() {
		logFailure(c.log, sourceAlphaVantage, sym.Symbol, res.Err)
	}
	return res
}

func (c *AlphaVantageClient) quote(ctx context.Context, region string, sym config.Symbol) Result[models.MarketIndex] {
	if c.apiKey == "" {
		return failure[models.MarketIndex](sourceAlphaVantage, sym.Symbol, ErrMissingAPIKey)
	}
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", sym.Symbol)
	q.Set("apikey", c.apiKey)
	body, err := getUpstream(ctx, c.hc, sourceAlphaVantage, c.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return failure[models.MarketIndex](sourceAlphaVantage, sym.Symbol, err)
	}

	latest, prev, err := lastTwoCloses(body)
	if err != nil {
		return failure[models.MarketIndex](sourceAlphaVantage, sym.Symbol, err)
	}
	change := latest - prev
	pct := change / prev * 100

	return success(sourceAlphaVantage, sym.Symbol, models.MarketIndex{
		ID:            uuid.NewString(),
		Region:        region,
		Name:          sym.Name,
		Value:         formatPrice(latest),
		Change:        formatSigned(change),
		ChangePercent: formatPercent(pct),
		UpdatedAt:     c.clock.Now().UTC(),
	})
}

// lastTwoCloses pulls the two most recent "4. close" values out of a
// TIME_SERIES_DAILY payload. Dates are ISO strings, so lexical order is
// chronological.
func lastTwoCloses(body []byte) (float64, float64, error) {
	if !gjson.ValidBytes(body) {
		return 0, 0, fmt.Errorf("%w: malformed json", ErrNoData)
	}
	series := gjson.GetBytes(body, `Time Series \(Daily\)`)
	if !series.IsObject() {
		for _, k := range []string{"Note", "Information", "Error Message"} {
			if note := gjson.GetBytes(body, k); note.Exists() {
				return 0, 0, fmt.Errorf("%w: %s", ErrNoData, note.String())
			}
		}
		return 0, 0, fmt.Errorf("%w: no time series", ErrNoData)
	}

	closes := map[string]string{}
	series.ForEach(func(date, bar gjson.Result) bool {
		closes[date.String()] = bar.Get(`4\. close`).String()
		return true
	})
	if len(closes) < 2 {
		return 0, 0, fmt.Errorf("%w: need two closes, have %d", ErrNoData, len(closes))
	}
	dates := make([]string, 0, len(closes))
	for d := range closes {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	latest, err := strconv.ParseFloat(closes[dates[0]], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: close %s: %v", ErrNoData, dates[0], err)
	}
	prev, err := strconv.ParseFloat(closes[dates[1]], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: close %s: %v", ErrNoData, dates[1], err)
	}
	if prev == 0 {
		return 0, 0, fmt.Errorf("%w: zero previous close", ErrNoData)
	}
	return latest, prev, nil
}
