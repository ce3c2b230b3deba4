package application

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"somrates-bot/internal/domain"
)

// ConverterService turns (coin, amount) into a priced Conversion by chaining
// the coin price feed and the USD/KGS fx feed.
type ConverterService struct {
	prices PriceFeed
	fx     FxFeed
}

func NewConverterService(prices PriceFeed, fx FxFeed) *ConverterService {
	return &ConverterService{prices: prices, fx: fx}
}

// Convert validates the raw command arguments, fetches the coin price and the
// fx rate in order, and computes the som total. The fx feed is never consulted
// when the price lookup fails. Feed failures surface as ErrPriceUnavailable or
// ErrRateUnavailable; no retries happen here.
func (s *ConverterService) Convert(ctx context.Context, coinText, amountText string) (domain.Conversion, error) {
	coin, err := domain.ParseCoin(coinText)
	if err != nil {
		return domain.Conversion{}, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Conversion{}, domain.ErrInvalidAmount
	}
	if amount <= 0 {
		return domain.Conversion{}, domain.ErrNonPositiveAmount
	}

	price, err := s.prices.Price(ctx, coin)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}

	rate, err := s.fx.Rate(ctx, "USD", "KGS")
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	usd := amount * price
	return domain.Conversion{
		Coin:      coin,
		Amount:    amount,
		UnitPrice: price,
		USDValue:  usd,
		FxRate:    rate,
		TotalKGS:  usd * rate,
	}, nil
}

// Board fetches the current price of every supported coin plus the USD/KGS
// rate. Per-coin failures are kept inline so one dead ticker does not blank
// the whole board.
func (s *ConverterService) Board(ctx context.Context) domain.RateBoard {
	var b domain.RateBoard
	for _, c := range domain.Coins() {
		price, err := s.prices.Price(ctx, c)
		b.Coins = append(b.Coins, domain.CoinRate{Coin: c, Price: price, Err: err})
	}
	b.FxRate, b.FxErr = s.fx.Rate(ctx, "USD", "KGS")
	return b
}
