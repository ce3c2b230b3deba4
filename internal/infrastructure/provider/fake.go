package provider

import (
	"context"

	"somrates-bot/internal/application"
	"somrates-bot/internal/domain"
)

// Fake serves fixed values for both feeds; useful for local runs without
// network access (FEEDS=fake).
type Fake struct {
	price float64
	rate  float64
}

var (
	_ application.PriceFeed = (*Fake)(nil)
	_ application.FxFeed    = (*Fake)(nil)
)

func NewFake(price, rate float64) *Fake { return &Fake{price: price, rate: rate} }

func (f *Fake) Price(_ context.Context, _ domain.Coin) (float64, error) {
	return f.price, nil
}

func (f *Fake) Rate(_ context.Context, _, _ string) (float64, error) {
	return f.rate, nil
}
