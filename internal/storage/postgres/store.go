// Package postgres implements storage.Store on PostgreSQL via lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	"marketcrown/backend-go/internal/models"
	"marketcrown/backend-go/internal/storage"
)

type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to dsn, verifies the connection and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db), nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Backend() string { return "postgres" }

func (s *Store) ListNews(ctx context.Context, f storage.NewsFilter) ([]models.MarketNews, error) {
	var (
		where []string
		args  []any
	)
	if f.Region != "" {
		args = append(args, f.Region)
		where = append(where, fmt.Sprintf("region = $%d", len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}
	q := `SELECT id, region, date, title, content, type, sentiment, created_at FROM market_news`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	out := []models.MarketNews{}
	for rows.Next() {
		var (
			n       models.MarketNews
			id      int64
			created sql.NullTime
		)
		if err := rows.Scan(&id, &n.Region, &n.Date, &n.Title, &n.Content, &n.Type, &n.Sentiment, &created); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		n.ID = strconv.FormatInt(id, 10)
		if created.Valid {
			n.CreatedAt = created.Time.UTC()
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) ListIndices(ctx context.Context, region string) ([]models.MarketIndex, error) {
	q := `SELECT id, region, name, value, change, change_percent, updated_at FROM market_indices`
	var args []any
	if region != "" {
		q += " WHERE region = $1"
		args = append(args, region)
	}
	q += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list indices: %w", err)
	}
	defer rows.Close()

	out := []models.MarketIndex{}
	for rows.Next() {
		var (
			ix      models.MarketIndex
			id      int64
			updated sql.NullTime
		)
		if err := rows.Scan(&id, &ix.Region, &ix.Name, &ix.Value, &ix.Change, &ix.ChangePercent, &updated); err != nil {
			return nil, fmt.Errorf("scan index: %w", err)
		}
		ix.ID = strconv.FormatInt(id, 10)
		if updated.Valid {
			ix.UpdatedAt = updated.Time.UTC()
		}
		out = append(out, ix)
	}
	return out, rows.Err()
}

func (s *Store) ListCrypto(ctx context.Context) ([]models.CryptoPrice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, symbol, name, price, change_24h, updated_at FROM crypto_prices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list crypto: %w", err)
	}
	defer rows.Close()

	out := []models.CryptoPrice{}
	for rows.Next() {
		var (
			c       models.CryptoPrice
			id      int64
			updated sql.NullTime
		)
		if err := rows.Scan(&id, &c.Symbol, &c.Name, &c.Price, &c.Change24h, &updated); err != nil {
			return nil, fmt.Errorf("scan crypto: %w", err)
		}
		c.ID = strconv.FormatInt(id, 10)
		if updated.Valid {
			c.UpdatedAt = updated.Time.UTC()
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetBlog(ctx context.Context, country, date string) (models.Blog, error) {
	var (
		b       models.Blog
		id      int64
		excerpt sql.NullString
		author  sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, country, date, title, excerpt, author, content
		FROM blogs WHERE country = $1 AND date = $2
		ORDER BY id LIMIT 1
	`, country, date).Scan(&id, &b.Country, &b.Date, &b.Title, &excerpt, &author, &b.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Blog{}, fmt.Errorf("get blog: %w", err)
	}
	b.ID = strconv.FormatInt(id, 10)
	b.Excerpt = excerpt.String
	b.Author = author.String
	return b, nil
}

// Seed writes the starter data set in one transaction when market_news is empty.
func (s *Store) Seed(ctx context.Context, today string) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM market_news)`).Scan(&exists); err != nil {
		return fmt.Errorf("check seed: %w", err)
	}
	if exists {
		return nil
	}

	data := storage.Seed(today)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, ix := range data.Indices {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO market_indices (region, name, value, change, change_percent)
			VALUES ($1, $2, $3, $4, $5)
		`, ix.Region, ix.Name, ix.Value, ix.Change, ix.ChangePercent); err != nil {
			return fmt.Errorf("seed index %s: %w", ix.Name, err)
		}
	}
	for _, c := range data.Crypto {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO crypto_prices (symbol, name, price, change_24h)
			VALUES ($1, $2, $3, $4)
		`, c.Symbol, c.Name, c.Price, c.Change24h); err != nil {
			return fmt.Errorf("seed crypto %s: %w", c.Symbol, err)
		}
	}
	for _, n := range data.News {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO market_news (region, date, title, content, type, sentiment)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, n.Region, n.Date, n.Title, n.Content, n.Type, n.Sentiment); err != nil {
			return fmt.Errorf("seed news: %w", err)
		}
	}
	for _, b := range data.Blogs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO blogs (country, date, title, excerpt, author, content)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, b.Country, b.Date, b.Title, b.Excerpt, b.Author, b.Content); err != nil {
			return fmt.Errorf("seed blog %s: %w", b.Country, err)
		}
	}
	return tx.Commit()
}
