package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"somrates-bot/internal/bootstrap"
	"somrates-bot/internal/config"
	"somrates-bot/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := bootstrap.ProvideConfig()

	// The token is the only fatal startup condition. No embedded fallback:
	// missing credentials abort before anything starts listening.
	if cfg.BotToken == "" {
		logger.Fatal("BOT_TOKEN is required; export it or put BOT_TOKEN=... into .env")
	}

	prices, fx := bootstrap.ProvideFeeds(cfg)
	svc := bootstrap.ProvideConverter(prices, fx)
	dedup, closeDedup := bootstrap.ProvideDedup(cfg)
	defer closeDedup()
	sink := bootstrap.ProvideSink()

	bot, err := bootstrap.ProvideBot(cfg, svc, dedup, logger)
	if err != nil {
		logger.Fatal("bootstrap bot", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: bootstrap.ProvideHealthHandler(sink),
	}
	go func() {
		logger.Info("health server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	if pinger := bootstrap.ProvidePinger(cfg, sink, logger); pinger != nil {
		go pinger.Start(ctx)
	}

	botDone := make(chan error, 1)
	go func() { botDone <- bot.Run(ctx) }()
	logger.Info("bot started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-botDone:
		if err != nil {
			logger.Error("bot stopped", zap.Error(err))
		}
	}
	cancel()

	shutdownCtx, shCancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
