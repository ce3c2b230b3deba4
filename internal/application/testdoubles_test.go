package application

import (
	"context"
	"errors"

	"somrates-bot/internal/domain"
)

var errFeedDown = errors.New("feed down")

type fakePriceFeed struct {
	prices map[domain.Coin]float64
	err    error
	calls  int
}

func (f *fakePriceFeed) Price(_ context.Context, coin domain.Coin) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	p, ok := f.prices[coin]
	if !ok {
		return 0, errFeedDown
	}
	return p, nil
}

type fakeFxFeed struct {
	rate  float64
	err   error
	calls int
}

func (f *fakeFxFeed) Rate(context.Context, string, string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}
