package application

import (
	"context"

	"somrates-bot/internal/domain"
)

// PriceFeed resolves a coin's spot price in USDT terms.
type PriceFeed interface {
	Price(ctx context.Context, coin domain.Coin) (float64, error)
}

// FxFeed resolves the exchange rate from base to quote currency.
type FxFeed interface {
	Rate(ctx context.Context, base, quote string) (float64, error)
}
