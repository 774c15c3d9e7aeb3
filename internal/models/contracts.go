package models

import "time"

const (
	RegionUSA    = "USA"
	RegionIndia  = "India"
	RegionJapan  = "Japan"
	RegionCrypto = "Crypto"
	RegionGlobal = "Global"
)

type MarketIndex struct {
	ID            string    `json:"id"`
	Region        string    `json:"region"`
	Name          string    `json:"name"`
	Value         string    `json:"value"`
	Change        string    `json:"change"`
	ChangePercent string    `json:"changePercent"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CryptoPrice struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Change24h string    `json:"change24h"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MarketNews struct {
	ID        string    `json:"id"`
	Region    string    `json:"region"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Blog struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Author  string `json:"author,omitempty"`
	Content string `json:"content"`
}

type DepStatus struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type HealthResponse struct {
	Ok         bool                 `json:"ok"`
	TsISO      string               `json:"tsISO"`
	Service    string               `json:"service"`
	Version    string               `json:"version,omitempty"`
	Cache      string               `json:"cache"`
	Store      string               `json:"store"`
	DepsStatus map[string]DepStatus `json:"deps_status"`
	Env        map[string]bool      `json:"env"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
