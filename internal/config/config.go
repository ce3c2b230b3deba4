package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort            = "8000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPriceTimeout    = 5 * time.Second
	DefaultFxTimeout       = 10 * time.Second
	DefaultPingInterval    = 30 * time.Second
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Health listener
	Port string
	// Telegram
	BotToken       string
	PollTimeoutSec int
	// Feeds
	Feeds        string // "live" or "fake"
	BinanceBase  string
	ERAPIBase    string
	PriceTimeout time.Duration
	FxTimeout    time.Duration
	// Keep-alive self pinger (0 disables)
	PingInterval time.Duration
	// Update dedup
	DedupBackend  string // "redis" or "none"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DedupTTL      time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durSec(key string, defSec int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defSec)), defSec)) * time.Second
}

// Load reads environment variables and applies defaults. The bot token has no
// default on purpose; startup fails closed when it is absent.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", DefaultPort),
		BotToken:       getEnv("BOT_TOKEN", ""),
		PollTimeoutSec: atoiDef(getEnv("POLL_TIMEOUT_S", "30"), 30),
		Feeds:          getEnv("FEEDS", "live"),
		BinanceBase:    getEnv("BINANCE_API_BASE", "https://api.binance.com"),
		ERAPIBase:      getEnv("ER_API_BASE", "https://open.er-api.com"),
		PriceTimeout:   durSec("PRICE_TIMEOUT_S", int(DefaultPriceTimeout/time.Second)),
		FxTimeout:      durSec("FX_TIMEOUT_S", int(DefaultFxTimeout/time.Second)),
		PingInterval:   durSec("PING_INTERVAL_S", int(DefaultPingInterval/time.Second)),
		DedupBackend:   getEnv("DEDUP_BACKEND", "none"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        atoiDef(getEnv("REDIS_DB", "0"), 0),
		DedupTTL:       time.Duration(atoiDef(getEnv("DEDUP_TTL_MS", "3600000"), 3600000)) * time.Millisecond,
	}
}
