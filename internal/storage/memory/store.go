// Package memory is the process-local record store used when no DATABASE_URL is set.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"marketcrown/backend-go/internal/models"
	"marketcrown/backend-go/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	nextID  int
	news    []models.MarketNews
	indices []models.MarketIndex
	crypto  []models.CryptoPrice
	blogs   []models.Blog
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) id() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func (s *Store) Seed(_ context.Context, today string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.news) > 0 {
		return nil
	}
	data := storage.Seed(today)
	now := time.Now().UTC()
	for _, ix := range data.Indices {
		ix.ID = s.id()
		ix.UpdatedAt = now
		s.indices = append(s.indices, ix)
	}
	for _, c := range data.Crypto {
		c.ID = s.id()
		c.UpdatedAt = now
		s.crypto = append(s.crypto, c)
	}
	for _, n := range data.News {
		n.ID = s.id()
		n.CreatedAt = now
		s.news = append(s.news, n)
	}
	for _, b := range data.Blogs {
		b.ID = s.id()
		s.blogs = append(s.blogs, b)
	}
	return nil
}

// AddNews appends records, assigning ids.
func (s *Store) AddNews(items ...models.MarketNews) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range items {
		n.ID = s.id()
		s.news = append(s.news, n)
	}
}

// AddBlogs appends records, assigning ids.
func (s *Store) AddBlogs(items ...models.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range items {
		b.ID = s.id()
		s.blogs = append(s.blogs, b)
	}
}

func (s *Store) ListNews(_ context.Context, f storage.NewsFilter) ([]models.MarketNews, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.MarketNews{}
	for _, n := range s.news {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Store) ListIndices(_ context.Context, region string) ([]models.MarketIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.MarketIndex{}
	for _, ix := range s.indices {
		if region == "" || ix.Region == region {
			out = append(out, ix)
		}
	}
	return out, nil
}

func (s *Store) ListCrypto(_ context.Context) ([]models.CryptoPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CryptoPrice, len(s.crypto))
	copy(out, s.crypto)
	return out, nil
}

func (s *Store) GetBlog(_ context.Context, country, date string) (models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blogs {
		if b.Country == country && b.Date == date {
			return b, nil
		}
	}
	return models.Blog{}, storage.ErrNotFound
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Backend() string { return "memory" }
