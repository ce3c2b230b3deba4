package domain

import "strings"

type Coin string

// SupportedCoins maps a coin symbol to its Binance trading pair.
var SupportedCoins = map[Coin]string{
	"btc": "BTCUSDT",
	"eth": "ETHUSDT",
	"ltc": "LTCUSDT",
	"ada": "ADAUSDT",
	"dot": "DOTUSDT",
	"bnb": "BNBUSDT",
	"xrp": "XRPUSDT",
	"sol": "SOLUSDT",
}

// coinOrder fixes the rendering order for /rates and /help.
var coinOrder = []Coin{"btc", "eth", "ltc", "ada", "dot", "bnb", "xrp", "sol"}

// Coins returns the supported coins in display order.
func Coins() []Coin {
	out := make([]Coin, len(coinOrder))
	copy(out, coinOrder)
	return out
}

// ParseCoin normalizes a user-supplied symbol and validates it against the
// supported set.
func ParseCoin(s string) (Coin, error) {
	c := Coin(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := SupportedCoins[c]; !ok {
		return "", ErrUnsupportedCoin
	}
	return c, nil
}

// Pair returns the Binance trading pair for the coin, or "" if unsupported.
func (c Coin) Pair() string { return SupportedCoins[c] }

func (c Coin) Upper() string { return strings.ToUpper(string(c)) }
