package domain

import "errors"

var (
	ErrUnsupportedCoin   = errors.New("unsupported coin")
	ErrInvalidAmount     = errors.New("invalid amount format")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrPriceUnavailable  = errors.New("coin price unavailable")
	ErrRateUnavailable   = errors.New("exchange rate unavailable")
)
