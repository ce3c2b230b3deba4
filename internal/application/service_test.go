package application

import (
	"context"
	"testing"

	"somrates-bot/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Convert_HappyPath(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{prices: map[domain.Coin]float64{"btc": 60000}}
	fx := &fakeFxFeed{rate: 89.5}
	svc := NewConverterService(pf, fx)

	got, err := svc.Convert(context.Background(), "btc", "0.001")
	require.NoError(t, err)
	require.Equal(t, domain.Coin("btc"), got.Coin)
	require.InDelta(t, 0.001, got.Amount, 1e-12)
	require.InDelta(t, 60000, got.UnitPrice, 1e-9)
	require.InDelta(t, 60.0, got.USDValue, 1e-9)
	require.InDelta(t, 89.5, got.FxRate, 1e-9)
	require.InDelta(t, 5370.0, got.TotalKGS, 1e-9)
}

func Test_Convert_CoinCaseInsensitive(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{prices: map[domain.Coin]float64{"eth": 2500}}
	fx := &fakeFxFeed{rate: 87.0}
	svc := NewConverterService(pf, fx)

	got, err := svc.Convert(context.Background(), "ETH", "2")
	require.NoError(t, err)
	require.InDelta(t, 2*2500*87.0, got.TotalKGS, 1e-9)
}

func Test_Convert_UnsupportedCoin(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{}
	fx := &fakeFxFeed{rate: 89.5}
	svc := NewConverterService(pf, fx)

	for _, coin := range []string{"doge", "DOGE", "xyz", ""} {
		_, err := svc.Convert(context.Background(), coin, "1")
		require.ErrorIs(t, err, domain.ErrUnsupportedCoin, coin)
	}
	require.Equal(t, 0, pf.calls)
	require.Equal(t, 0, fx.calls)
}

func Test_Convert_InvalidAmountFormat(t *testing.T) {
	t.Parallel()
	svc := NewConverterService(&fakePriceFeed{}, &fakeFxFeed{})

	for _, amount := range []string{"abc", "1,5", "", "NaN", "Inf", "-Inf"} {
		_, err := svc.Convert(context.Background(), "btc", amount)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}
}

func Test_Convert_NonPositiveAmount(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{prices: map[domain.Coin]float64{"btc": 60000}}
	svc := NewConverterService(pf, &fakeFxFeed{rate: 89.5})

	for _, amount := range []string{"-5", "0", "-0.001"} {
		_, err := svc.Convert(context.Background(), "btc", amount)
		require.ErrorIs(t, err, domain.ErrNonPositiveAmount, amount)
	}
	require.Equal(t, 0, pf.calls)
}

func Test_Convert_PriceUnavailable_SkipsFx(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{err: errFeedDown}
	fx := &fakeFxFeed{rate: 89.5}
	svc := NewConverterService(pf, fx)

	_, err := svc.Convert(context.Background(), "btc", "1")
	require.ErrorIs(t, err, domain.ErrPriceUnavailable)
	require.Equal(t, 1, pf.calls)
	require.Equal(t, 0, fx.calls)
}

func Test_Convert_FxUnavailable(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{prices: map[domain.Coin]float64{"btc": 60000}}
	fx := &fakeFxFeed{err: errFeedDown}
	svc := NewConverterService(pf, fx)

	_, err := svc.Convert(context.Background(), "btc", "1")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
	require.Equal(t, 1, fx.calls)
}

func Test_Board_InlineFailures(t *testing.T) {
	t.Parallel()
	pf := &fakePriceFeed{prices: map[domain.Coin]float64{"btc": 60000, "eth": 2500}}
	fx := &fakeFxFeed{rate: 89.5}
	svc := NewConverterService(pf, fx)

	b := svc.Board(context.Background())
	require.Len(t, b.Coins, len(domain.Coins()))
	require.NoError(t, b.FxErr)
	require.InDelta(t, 89.5, b.FxRate, 1e-9)

	byCoin := map[domain.Coin]domain.CoinRate{}
	for _, r := range b.Coins {
		byCoin[r.Coin] = r
	}
	require.NoError(t, byCoin["btc"].Err)
	require.InDelta(t, 60000, byCoin["btc"].Price, 1e-9)
	require.Error(t, byCoin["sol"].Err)
	// One price call per coin plus a single fx call.
	require.Equal(t, len(domain.Coins()), pf.calls)
	require.Equal(t, 1, fx.calls)
}
