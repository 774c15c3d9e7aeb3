package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	"marketcrown/backend-go/internal/models"
)

// Aggregator fans a region's symbol list out to the matching quote source.
type Aggregator struct {
	regions config.Regions
	sources map[string]QuoteSource
	log     logrus.FieldLogger
}

func NewAggregator(regions config.Regions, sources map[string]QuoteSource, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{regions: regions, sources: sources, log: log}
}

func (a *Aggregator) Regions() config.Regions { return a.regions }

// FetchRegion quotes every configured symbol for region concurrently and
// returns the successful ones in configuration order. It errors only when the
// region is unknown or every symbol failed; a region wired to no source
// yields an empty list.
func (a *Aggregator) FetchRegion(ctx context.Context, region string) ([]models.MarketIndex, error) {
	rc, ok := a.regions[region]
	if !ok {
		return nil, fmt.Errorf("region %q is not fetched live", region)
	}
	src := a.sources[rc.Source]
	if rc.Source == config.SourceNone || src == nil || len(rc.Symbols) == 0 {
		a.log.WithFields(logrus.Fields{"region": region, "source": rc.Source}).Debug("no live source wired for region")
		return []models.MarketIndex{}, nil
	}

	results := make([]Result[models.MarketIndex], len(rc.Symbols))
	var wg sync.WaitGroup
	for i, sym := range rc.Symbols {
		wg.Add(1)
		go func(i int, sym config.Symbol) {
			defer wg.Done()
			results[i] = src.Quote(ctx, region, sym)
		}(i, sym)
	}
	wg.Wait()

	out := make([]models.MarketIndex, 0, len(results))
	var lastErr error
	for _, r := range results {
		if !r.Ok() {
			lastErr = r.Err
			continue
		}
		out = append(out, r.Value)
	}
	if len(out) == 0 {
		return out, fmt.Errorf("all %d %s quotes failed: %w", len(results), region, lastErr)
	}
	if dropped := len(results) - len(out); dropped > 0 {
		a.log.WithFields(logrus.Fields{"region": region, "dropped": dropped}).Info("partial region quotes")
	}
	return out, nil
}
