package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"somrates-bot/internal/metrics"

	"github.com/stretchr/testify/require"
)

func TestPinger_CountsSuccessfulPings(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&hits, 1)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	sink := metrics.NewSink()
	p := &Pinger{Target: srv.URL, Every: 10 * time.Millisecond, Sink: sink}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, fake := sink.Snapshot()
		return fake >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
	require.GreaterOrEqual(t, atomic.LoadInt64(&hits), int64(2))
}

func TestPinger_FailedPingDoesNotCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := metrics.NewSink()
	p := &Pinger{Target: srv.URL, Every: 10 * time.Millisecond, Sink: sink}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	_, fake := sink.Snapshot()
	require.Equal(t, int64(0), fake)
}
