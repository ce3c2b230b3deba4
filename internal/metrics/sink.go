package metrics

import (
	"sync"
	"time"
)

// Sink holds the process start time and the keep-alive request counter that
// the health listener reports. It is injected instead of living as package
// globals so the listener can be tested in isolation.
type Sink struct {
	start time.Time

	mu           sync.Mutex
	fakeRequests int64
}

func NewSink() *Sink {
	return &Sink{start: time.Now()}
}

// IncFakeRequests records one successful keep-alive self request.
func (s *Sink) IncFakeRequests() {
	s.mu.Lock()
	s.fakeRequests++
	s.mu.Unlock()
}

// Snapshot returns the uptime and the current counter value.
func (s *Sink) Snapshot() (uptime time.Duration, fakeRequests int64) {
	s.mu.Lock()
	fakeRequests = s.fakeRequests
	s.mu.Unlock()
	return time.Since(s.start), fakeRequests
}
