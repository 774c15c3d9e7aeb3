package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS market_news (
		id SERIAL PRIMARY KEY,
		region TEXT NOT NULL,
		date TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		type TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS market_indices (
		id SERIAL PRIMARY KEY,
		region TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		change TEXT NOT NULL,
		change_percent TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS crypto_prices (
		id SERIAL PRIMARY KEY,
		symbol TEXT NOT NULL,
		name TEXT NOT NULL,
		price TEXT NOT NULL,
		change_24h TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id SERIAL PRIMARY KEY,
		country TEXT NOT NULL,
		date TEXT NOT NULL,
		title TEXT NOT NULL,
		excerpt TEXT,
		author TEXT,
		content TEXT NOT NULL
	)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
