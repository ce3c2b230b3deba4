package bootstrap

import (
	"net/http"

	"somrates-bot/internal/application"
	"somrates-bot/internal/config"
	httpserver "somrates-bot/internal/infrastructure/http"
	"somrates-bot/internal/infrastructure/keepalive"
	"somrates-bot/internal/infrastructure/logx"
	"somrates-bot/internal/infrastructure/provider"
	redisstore "somrates-bot/internal/infrastructure/redis"
	"somrates-bot/internal/infrastructure/telegram"
	"somrates-bot/internal/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

// ProvideFeeds builds the two price feeds with their own clients; the Binance
// ticker answers fast, the fx endpoint is given more slack.
func ProvideFeeds(cfg config.Config) (application.PriceFeed, application.FxFeed) {
	if cfg.Feeds == "fake" {
		f := provider.NewFake(60000, 89.5)
		return f, f
	}
	prices := &provider.BinanceTicker{
		BaseURL: cfg.BinanceBase,
		Client:  &http.Client{Timeout: cfg.PriceTimeout},
	}
	fx := &provider.ERAPIFx{
		BaseURL: cfg.ERAPIBase,
		Client:  &http.Client{Timeout: cfg.FxTimeout},
	}
	return prices, fx
}

// ProvideDedup builds the update dedup store, falling back to a no-op when
// DEDUP_BACKEND is not "redis".
func ProvideDedup(cfg config.Config) (application.UpdateDedup, func()) {
	if cfg.DedupBackend != "redis" {
		return application.NoopDedup{}, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return redisstore.New(client, cfg.DedupTTL), func() { _ = client.Close() }
}

func ProvideConverter(prices application.PriceFeed, fx application.FxFeed) *application.ConverterService {
	return application.NewConverterService(prices, fx)
}

func ProvideSink() *metrics.Sink { return metrics.NewSink() }

func ProvideHealthHandler(sink *metrics.Sink) http.Handler {
	return httpserver.NewRouter(httpserver.NewServer(sink))
}

func ProvidePinger(cfg config.Config, sink *metrics.Sink, log *zap.Logger) *keepalive.Pinger {
	if cfg.PingInterval <= 0 {
		return nil
	}
	return &keepalive.Pinger{
		Target: "http://127.0.0.1:" + cfg.Port + "/",
		Every:  cfg.PingInterval,
		Sink:   sink,
		Log:    log,
	}
}

func ProvideBot(cfg config.Config, svc *application.ConverterService, dedup application.UpdateDedup, log *zap.Logger) (*telegram.Bot, error) {
	return telegram.New(cfg.BotToken, svc, dedup, cfg.PollTimeoutSec, log)
}
