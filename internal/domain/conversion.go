package domain

// Conversion is the result of pricing an amount of a coin in Kyrgyz som.
// All figures keep full float64 precision; rounding happens at render time.
type Conversion struct {
	Coin      Coin
	Amount    float64
	UnitPrice float64 // coin price in USDT
	USDValue  float64 // Amount * UnitPrice
	FxRate    float64 // USD -> KGS
	TotalKGS  float64 // USDValue * FxRate
}

// CoinRate is one row of the /rates board. A failed lookup keeps its error
// inline instead of failing the whole board.
type CoinRate struct {
	Coin  Coin
	Price float64
	Err   error
}

type RateBoard struct {
	Coins  []CoinRate
	FxRate float64
	FxErr  error
}
