package logx

import (
	"strings"

	"somrates-bot/internal/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
)

func init() {
	// This init runs before cmd/bot's, so the .env fallback must be loaded
	// here for LOG_LEVEL to take effect.
	_ = godotenv.Load()
	logger = build(config.Load().LogLevel)
}

func build(level string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		_ = zapCfg.Level.UnmarshalText([]byte(strings.ToLower(level)))
	}

	return zap.Must(zapCfg.Build(zap.AddCaller()))
}

// L returns the package-level logger instance.
func L() *zap.Logger {
	return logger
}
