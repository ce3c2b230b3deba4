package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCoin_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"btc", "BTC", "Btc", " btc "} {
		c, err := ParseCoin(s)
		require.NoError(t, err, s)
		require.Equal(t, Coin("btc"), c)
	}
}

func TestParseCoin_Unsupported(t *testing.T) {
	for _, s := range []string{"doge", "usd", "", "btcusdt"} {
		_, err := ParseCoin(s)
		require.ErrorIs(t, err, ErrUnsupportedCoin, s)
	}
}

func TestCoin_Pair(t *testing.T) {
	require.Equal(t, "BTCUSDT", Coin("btc").Pair())
	require.Equal(t, "", Coin("doge").Pair())
}

func TestCoins_CoversSupportedSet(t *testing.T) {
	coins := Coins()
	require.Len(t, coins, len(SupportedCoins))
	for _, c := range coins {
		require.Contains(t, SupportedCoins, c)
	}
}
