package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

func bySymbol(r *http.Request) string { return r.URL.Query().Get("symbol") }

func TestFinnhubQuote_Normalizes(t *testing.T) {
	srv := newCountingServer(t, bySymbol, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"c":189.5,"d":0,"dp":0,"h":190,"l":187,"o":188,"pc":189.5,"t":1737556200}`))
	})
	clock := newFakeClock()
	log, _ := nullLogger()
	c := NewFinnhubClient(config.Config{FinnhubAPIKey: "secret", FinnhubBaseURL: srv.URL + "/"}, http.DefaultClient, clock, log)

	res := c.Quote(context.Background(), models.RegionUSA, config.Symbol{Symbol: "AAPL", Name: "Apple"})
	require.True(t, res.Ok(), "unexpected error: %v", res.Err)
	assert.Equal(t, "Apple", res.Value.Name)
	assert.Equal(t, models.RegionUSA, res.Value.Region)
	assert.Equal(t, "189.50", res.Value.Value)
	assert.Equal(t, "+0.00", res.Value.Change)
	assert.Equal(t, "+0.00%", res.Value.ChangePercent)
	assert.Equal(t, clock.Now(), res.Value.UpdatedAt)
	assert.NotEmpty(t, res.Value.ID)
	assert.Equal(t, 1, srv.count("AAPL"))
}

func TestFinnhubQuote_Failures(t *testing.T) {
	srv := newCountingServer(t, bySymbol, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "DOWN":
			http.Error(w, "limit reached", http.StatusTooManyRequests)
		case "ZERO":
			_, _ = w.Write([]byte(`{"c":0,"d":null,"dp":null}`))
		default:
			_, _ = w.Write([]byte(`{"c":`))
		}
	})
	log, hook := nullLogger()
	c := NewFinnhubClient(config.Config{FinnhubAPIKey: "k", FinnhubBaseURL: srv.URL}, http.DefaultClient, nil, log)
	ctx := context.Background()

	res := c.Quote(ctx, "USA", config.Symbol{Symbol: "DOWN"})
	require.False(t, res.Ok())
	var ue *UpstreamError
	require.True(t, errors.As(res.Err, &ue))
	assert.Equal(t, http.StatusTooManyRequests, ue.Status)
	assert.Equal(t, sourceFinnhub, res.Source)

	res = c.Quote(ctx, "USA", config.Symbol{Symbol: "ZERO"})
	assert.ErrorIs(t, res.Err, ErrNoData)

	res = c.Quote(ctx, "USA", config.Symbol{Symbol: "BROKEN"})
	assert.Error(t, res.Err)

	noKey := NewFinnhubClient(config.Config{FinnhubBaseURL: srv.URL}, http.DefaultClient, nil, log)
	res = noKey.Quote(ctx, "USA", config.Symbol{Symbol: "AAPL"})
	assert.ErrorIs(t, res.Err, ErrMissingAPIKey)
	assert.Equal(t, 0, srv.count("AAPL"), "no request without an api key")

	require.Len(t, hook.AllEntries(), 4)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "AAPL", hook.LastEntry().Data["symbol"])
}

const alphaSeries = `{
  "Meta Data": {"2. Symbol": "TCS.NSE"},
  "Time Series (Daily)": {
    "2025-01-20": {"1. open": "4100.0", "4. close": "4120.00"},
    "2025-01-22": {"1. open": "4150.0", "4. close": "4080.00"},
    "2025-01-21": {"1. open": "4120.0", "4. close": "4160.00"}
  }
}`

func TestAlphaVantageQuote_ComparesLastTwoCloses(t *testing.T) {
	srv := newCountingServer(t, bySymbol, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))
		_, _ = w.Write([]byte(alphaSeries))
	})
	log, _ := nullLogger()
	c := NewAlphaVantageClient(config.Config{AlphaVantageAPIKey: "k", AlphaVantageURL: srv.URL}, http.DefaultClient, nil, log)

	res := c.Quote(context.Background(), models.RegionIndia, config.Symbol{Symbol: "TCS.NSE", Name: "Tata Consultancy Services"})
	require.True(t, res.Ok(), "unexpected error: %v", res.Err)
	assert.Equal(t, "4080.00", res.Value.Value)
	assert.Equal(t, "-80.00", res.Value.Change)
	assert.Equal(t, "-1.92%", res.Value.ChangePercent)
	assert.Equal(t, models.RegionIndia, res.Value.Region)
}

func TestLastTwoCloses_Errors(t *testing.T) {
	_, _, err := lastTwoCloses([]byte(`{"Note":"Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "rate limit")

	_, _, err = lastTwoCloses([]byte(`{"Time Series (Daily)": {"2025-01-22": {"4. close": "10"}}}`))
	assert.ErrorIs(t, err, ErrNoData)

	_, _, err = lastTwoCloses([]byte(`not json`))
	assert.ErrorIs(t, err, ErrNoData)

	latest, prev, err := lastTwoCloses([]byte(alphaSeries))
	require.NoError(t, err)
	assert.Equal(t, 4080.0, latest)
	assert.Equal(t, 4160.0, prev)
}

func nseRows(n int) string {
	rows := make([]string, 0, n+1)
	rows = append(rows, `{"key":"SECTORAL INDICES","index":"NIFTY AUTO","last":22000,"variation":10,"percentChange":0.05}`)
	for i := 0; i < n; i++ {
		rows = append(rows, fmt.Sprintf(`{"key":"BROAD MARKET INDICES","index":"INDEX %d","last":"21,456.70","variation":-12.5,"percentChange":"-0.06"}`, i))
	}
	return `{"data":[` + strings.Join(rows, ",") + `]}`
}

func TestNSEMarketIndices_BroadMarketOnlyAndCapped(t *testing.T) {
	srv := newCountingServer(t, func(r *http.Request) string { return r.URL.Path }, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(nseRows(10)))
	})
	log, _ := nullLogger()
	c := NewNSEClient(config.Config{NSEBaseURL: srv.URL}, http.DefaultClient, nil, log)

	res := c.MarketIndices(context.Background(), 6)
	require.True(t, res.Ok(), "unexpected error: %v", res.Err)
	require.Len(t, res.Value, 6)
	assert.Equal(t, "INDEX 0", res.Value[0].Name)
	assert.Equal(t, "21456.70", res.Value[0].Value)
	assert.Equal(t, "-12.50", res.Value[0].Change)
	assert.Equal(t, "-0.06%", res.Value[0].ChangePercent)
	assert.Equal(t, models.RegionIndia, res.Value[0].Region)
	assert.Equal(t, 1, srv.count("/api/allIndices"))
}

func TestNSEMarketIndices_MalformedIsFailure(t *testing.T) {
	srv := newCountingServer(t, func(r *http.Request) string { return r.URL.Path }, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"resource not available"}`))
	})
	log, _ := nullLogger()
	res := NewNSEClient(config.Config{NSEBaseURL: srv.URL}, http.DefaultClient, nil, log).MarketIndices(context.Background(), 6)
	assert.ErrorIs(t, res.Err, ErrNoData)
}

func coinGeckoPayload(n int) string {
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, fmt.Sprintf(`{"id":"coin-%d","symbol":"c%d","name":"Coin %d","current_price":%d.5,"price_change_percentage_24h":%s}`,
			i, i, i, 1000+i, map[bool]string{true: "null", false: "-1.234"}[i%2 == 0]))
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func TestCoinGeckoMarkets_CapsAtLimit(t *testing.T) {
	srv := newCountingServer(t, func(r *http.Request) string { return r.URL.Path }, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "demo", r.Header.Get("x-cg-demo-api-key"))
		_, _ = w.Write([]byte(coinGeckoPayload(150)))
	})
	log, _ := nullLogger()
	c := NewCoinGeckoClient(config.Config{CoinGeckoBaseURL: srv.URL, CoinGeckoAPIKey: "demo"}, http.DefaultClient, nil, log)

	res := c.Markets(context.Background(), 500)
	require.True(t, res.Ok(), "unexpected error: %v", res.Err)
	require.Len(t, res.Value, 100)
	assert.Equal(t, "C0", res.Value[0].Symbol)
	assert.Equal(t, "$1,000.50", res.Value[0].Price)
	assert.Equal(t, "+0.00%", res.Value[0].Change24h)
	assert.Equal(t, "-1.23%", res.Value[1].Change24h)
}
