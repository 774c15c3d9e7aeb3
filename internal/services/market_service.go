package services

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
	"marketcrown/backend-go/internal/storage"
)

const (
	keyIndicesPrefix      = "indices:"
	keyIndiaMarketIndices = "india_market_indices"
	keyCryptoPrices       = "crypto_prices"
)

type IndexLister interface {
	MarketIndices(ctx context.Context, limit int) Result[[]models.MarketIndex]
}

type CryptoLister interface {
	Markets(ctx context.Context, limit int) Result[[]models.CryptoPrice]
}

// MarketService answers the dashboard queries. Live data goes through the
// entry cache; everything else is read from the store.
type MarketService struct {
	cache       *EntryCache
	agg         *Aggregator
	nse         IndexLister
	crypto      CryptoLister
	store       storage.Store
	cryptoLimit int
	indiaLimit  int
	log         logrus.FieldLogger
}

type MarketDeps struct {
	Cache      *EntryCache
	Aggregator *Aggregator
	NSE        IndexLister
	Crypto     CryptoLister
	Store      storage.Store
}

func NewMarketService(cfg config.Config, deps MarketDeps, log logrus.FieldLogger) *MarketService {
	cryptoLimit := cfg.CryptoLimit
	if cryptoLimit <= 0 || cryptoLimit > maxCryptoAssets {
		cryptoLimit = maxCryptoAssets
	}
	indiaLimit := cfg.IndiaMarketLimit
	if indiaLimit <= 0 {
		indiaLimit = 6
	}
	return &MarketService{
		cache:       deps.Cache,
		agg:         deps.Aggregator,
		nse:         deps.NSE,
		crypto:      deps.Crypto,
		store:       deps.Store,
		cryptoLimit: cryptoLimit,
		indiaLimit:  indiaLimit,
		log:         log,
	}
}

// Wire builds the default adapters, aggregator and service for cfg.
func Wire(cfg config.Config, regions config.Regions, backend Cache, store storage.Store, log logrus.FieldLogger) *MarketService {
	hc := &http.Client{Timeout: cfg.RequestTimeout}
	sources := map[string]QuoteSource{
		config.SourceFinnhub:      NewFinnhubClient(cfg, hc, SystemClock, log),
		config.SourceAlphaVantage: NewAlphaVantageClient(cfg, hc, SystemClock, log),
	}
	return NewMarketService(cfg, MarketDeps{
		Cache:      NewEntryCache(backend, cfg.CacheTTL, SystemClock),
		Aggregator: NewAggregator(regions, sources, log),
		NSE:        NewNSEClient(cfg, hc, SystemClock, log),
		Crypto:     NewCoinGeckoClient(cfg, hc, SystemClock, log),
		Store:      store,
	}, log)
}

func (s *MarketService) Store() storage.Store { return s.store }

// Indices serves live regions through the cache and every other region,
// including none, from the store.
func (s *MarketService) Indices(ctx context.Context, region string) ([]models.MarketIndex, error) {
	if region != "" && s.agg.Regions().Live(region) {
		return cachedFetch(ctx, s, keyIndicesPrefix+region, func(ctx context.Context) ([]models.MarketIndex, error) {
			return s.agg.FetchRegion(ctx, region)
		}), nil
	}
	return s.store.ListIndices(ctx, region)
}

func (s *MarketService) IndiaMarketIndices(ctx context.Context) []models.MarketIndex {
	out := cachedFetch(ctx, s, keyIndiaMarketIndices, func(ctx context.Context) ([]models.MarketIndex, error) {
		res := s.nse.MarketIndices(ctx, s.indiaLimit)
		return res.Value, res.Err
	})
	if len(out) > s.indiaLimit {
		out = out[:s.indiaLimit]
	}
	return out
}

func (s *MarketService) Crypto(ctx context.Context) []models.CryptoPrice {
	out := cachedFetch(ctx, s, keyCryptoPrices, func(ctx context.Context) ([]models.CryptoPrice, error) {
		res := s.crypto.Markets(ctx, s.cryptoLimit)
		return res.Value, res.Err
	})
	if len(out) > s.cryptoLimit {
		out = out[:s.cryptoLimit]
	}
	return out
}

func (s *MarketService) News(ctx context.Context, f storage.NewsFilter) ([]models.MarketNews, error) {
	return s.store.ListNews(ctx, f)
}

func (s *MarketService) Blog(ctx context.Context, country, date string) (models.Blog, error) {
	return s.store.GetBlog(ctx, country, date)
}

// cachedFetch serves key from the cache while fresh, otherwise calls fetch and
// stores its result. Failed fetches are not cached and degrade to an empty list.
// Concurrent misses on one key may each call fetch.
func cachedFetch[T any](ctx context.Context, s *MarketService, key string, fetch func(context.Context) ([]T, error)) []T {
	var cached []T
	if s.cache.Get(ctx, key, &cached) && cached != nil {
		return cached
	}
	data, err := fetch(ctx)
	if err != nil {
		s.log.WithField("key", key).WithError(err).Warn("live fetch failed, serving empty result")
		return []T{}
	}
	if data == nil {
		data = []T{}
	}
	if err := s.cache.Put(ctx, key, data); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache put failed")
	}
	return data
}
