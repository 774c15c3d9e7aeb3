package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

const (
	sourceNSE         = "nse"
	nseBroadMarketKey = "BROAD MARKET INDICES"
)

// NSEClient lists India's broad market indices (NIFTY 50, NIFTY BANK, ...)
// from an allIndices-style endpoint.
type NSEClient struct {
	hc      *http.Client
	baseURL string
	clock   Clock
	log     logrus.FieldLogger
}

func NewNSEClient(cfg config.Config, hc *http.Client, clock Clock, log logrus.FieldLogger) *NSEClient {
	if clock == nil {
		clock = SystemClock
	}
	return &NSEClient{
		hc:      hc,
		baseURL: strings.TrimRight(cfg.NSEBaseURL, "/"),
		clock:   clock,
		log:     log,
	}
}

func (c *NSEClient) MarketIndices(ctx context.Context, limit int) Result[[]models.MarketIndex] {
	res := c.marketIndices(ctx, limit)
	if !res.Ok() {
		logFailure(c.log, sourceNSE, "", res.Err)
	}
	return res
}

func (c *NSEClient) marketIndices(ctx context.Context, limit int) Result[[]models.MarketIndex] {
	header := http.Header{}
	header.Set("User-Agent", "Mozilla/5.0 (compatible; marketcrown/1.0)")
	body, err := getUpstream(ctx, c.hc, sourceNSE, c.baseURL+"/api/allIndices", header)
	if err != nil {
		return failure[[]models.MarketIndex](sourceNSE, "", err)
	}
	if !gjson.ValidBytes(body) {
		return failure[[]models.MarketIndex](sourceNSE, "", fmt.Errorf("%w: malformed json", ErrNoData))
	}
	rows := gjson.GetBytes(body, "data")
	if !rows.IsArray() {
		return failure[[]models.MarketIndex](sourceNSE, "", fmt.Errorf("%w: missing data array", ErrNoData))
	}

	all := rows.Array()
	broad := make([]gjson.Result, 0, len(all))
	for _, r := range all {
		if strings.EqualFold(r.Get("key").String(), nseBroadMarketKey) {
			broad = append(broad, r)
		}
	}
	if len(broad) == 0 {
		broad = all
	}

	now := c.clock.Now().UTC()
	out := make([]models.MarketIndex, 0, limit)
	for _, r := range broad {
		if limit > 0 && len(out) >= limit {
			break
		}
		name := r.Get("index").String()
		if name == "" {
			name = r.Get("indexSymbol").String()
		}
		last, ok := looseFloat(r.Get("last"))
		if name == "" || !ok {
			continue
		}
		variation, _ := looseFloat(r.Get("variation"))
		pct, _ := looseFloat(r.Get("percentChange"))
		out = append(out, models.MarketIndex{
			ID:            uuid.NewString(),
			Region:        models.RegionIndia,
			Name:          name,
			Value:         formatPrice(last),
			Change:        formatSigned(variation),
			ChangePercent: formatPercent(pct),
			UpdatedAt:     now,
		})
	}
	if len(out) == 0 {
		return failure[[]models.MarketIndex](sourceNSE, "", fmt.Errorf("%w: no usable index rows", ErrNoData))
	}
	return success(sourceNSE, "", out)
}

// looseFloat accepts numbers and numeric strings such as "21,456.70".
func looseFloat(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(r.Str), ",", ""), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
