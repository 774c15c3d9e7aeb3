package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	RedisURL           string
	DatabaseURL        string
	RegionsFile        string
	LogLevel           string
	LogFormat          string
	FinnhubAPIKey      string
	FinnhubBaseURL     string
	AlphaVantageAPIKey string
	AlphaVantageURL    string
	NSEBaseURL         string
	CoinGeckoAPIKey    string
	CoinGeckoBaseURL   string
	CacheTTL           time.Duration
	RequestTimeout     time.Duration
	RateLimitPerSec    int
	RateLimitBurst     int
	CryptoLimit        int
	IndiaMarketLimit   int
}

func Load() Config {
	return Config{
		Port:               getEnv("PORT", "5000"),
		RedisURL:           os.Getenv("REDIS_URL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RegionsFile:        os.Getenv("REGIONS_FILE"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		FinnhubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		FinnhubBaseURL:     getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		AlphaVantageURL:    getEnv("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co"),
		NSEBaseURL:         getEnv("NSE_BASE_URL", "https://www.nseindia.com"),
		CoinGeckoAPIKey:    os.Getenv("COINGECKO_API_KEY"),
		CoinGeckoBaseURL:   getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com"),
		CacheTTL:           getEnvDuration("CACHE_TTL_SECONDS", 5*time.Minute),
		RequestTimeout:     getEnvDuration("UPSTREAM_TIMEOUT_SECONDS", 15*time.Second),
		RateLimitPerSec:    getEnvInt("RATE_LIMIT_PER_SEC", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
		CryptoLimit:        getEnvInt("CRYPTO_LIMIT", 100),
		IndiaMarketLimit:   getEnvInt("INDIA_MARKET_LIMIT", 6),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return time.Duration(i) * time.Second
}
