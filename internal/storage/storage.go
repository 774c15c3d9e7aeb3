// Package storage defines the persisted record store behind the news, blog and
// non-live index endpoints.
package storage

import (
	"context"
	"errors"

	"marketcrown/backend-go/internal/models"
)

var ErrNotFound = errors.New("not found")

// NewsFilter selects news by exact region and/or exact date; empty fields match all.
type NewsFilter struct {
	Region string
	Date   string
}

func (f NewsFilter) Match(n models.MarketNews) bool {
	if f.Region != "" && n.Region != f.Region {
		return false
	}
	if f.Date != "" && n.Date != f.Date {
		return false
	}
	return true
}

type Store interface {
	ListNews(ctx context.Context, f NewsFilter) ([]models.MarketNews, error)
	// ListIndices returns persisted index cards for region, or all when region is empty.
	ListIndices(ctx context.Context, region string) ([]models.MarketIndex, error)
	ListCrypto(ctx context.Context) ([]models.CryptoPrice, error)
	GetBlog(ctx context.Context, country, date string) (models.Blog, error)
	// Seed inserts the starter data set dated today, once.
	Seed(ctx context.Context, today string) error
	Ping(ctx context.Context) error
	Backend() string
}
