package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"somrates-bot/internal/application"
	"somrates-bot/internal/domain"
)

const binanceTickerPath = "/api/v3/ticker/price"

// BinanceTicker fetches a coin's spot price from the Binance public ticker.
type BinanceTicker struct {
	BaseURL string
	Client  *http.Client
}

var _ application.PriceFeed = (*BinanceTicker)(nil)

type tickerResp struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func (p *BinanceTicker) Price(ctx context.Context, coin domain.Coin) (float64, error) {
	if p.BaseURL == "" {
		return 0, errors.New("binance: missing base url")
	}
	pair := coin.Pair()
	if pair == "" {
		return 0, fmt.Errorf("binance: no trading pair for %q", coin)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return 0, fmt.Errorf("binance: invalid base url: %w", err)
	}
	u.Path = binanceTickerPath
	q := u.Query()
	q.Set("symbol", pair)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("binance: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("binance: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("binance: status %d", resp.StatusCode)
	}

	var body tickerResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("binance: decode response: %w", err)
	}
	if body.Price == "" {
		return 0, errors.New("binance: missing price field")
	}
	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("binance: parse price %q: %w", body.Price, err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("binance: non-positive price %v for %s", price, pair)
	}
	return price, nil
}
