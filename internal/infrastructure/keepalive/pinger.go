package keepalive

import (
	"context"
	"io"
	"net/http"
	"time"

	"somrates-bot/internal/metrics"

	"go.uber.org/zap"
)

// Pinger periodically requests the local health endpoint so free-tier hosts
// see inbound traffic and keep the dyno awake. Successful pings bump the
// fake-request counter reported at /metrics.
type Pinger struct {
	Target string // e.g. http://127.0.0.1:8000/
	Every  time.Duration
	Client *http.Client
	Sink   *metrics.Sink
	Log    *zap.Logger
}

func (p *Pinger) Start(ctx context.Context) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	if p.Every <= 0 {
		p.Every = 30 * time.Second
	}
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 5 * time.Second}
	}

	t := time.NewTicker(p.Every)
	defer t.Stop()

	log.Info("keepalive_started", zap.String("target", p.Target), zap.Duration("every", p.Every))
	for {
		select {
		case <-ctx.Done():
			log.Info("keepalive_stopped")
			return
		case <-t.C:
			p.tick(ctx, log)
		}
	}
}

func (p *Pinger) tick(ctx context.Context, log *zap.Logger) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Target, nil)
	if err != nil {
		log.Debug("keepalive_bad_target", zap.Error(err))
		return
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		log.Debug("keepalive_ping_failed", zap.Error(err))
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode == http.StatusOK && p.Sink != nil {
		p.Sink.IncFakeRequests()
	}
}
