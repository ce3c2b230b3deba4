package redisstore_test

import (
	"context"
	"testing"
	"time"

	redisstore "somrates-bot/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestTryReserve(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := redisstore.New(client, time.Hour)

	ctx := context.Background()
	ok, err := store.TryReserve(ctx, "tg:update:101")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.TryReserve(ctx, "tg:update:101")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTryReserve_ExpiresWithTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := redisstore.New(client, time.Minute)

	ctx := context.Background()
	ok, err := store.TryReserve(ctx, "tg:update:202")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = store.TryReserve(ctx, "tg:update:202")
	require.NoError(t, err)
	require.True(t, ok)
}
