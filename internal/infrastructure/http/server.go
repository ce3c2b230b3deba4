package httpserver

import (
	"encoding/json"
	"net/http"

	"somrates-bot/internal/metrics"
)

// Server answers deployment liveness probes. The contract is fixed: "/" and
// "/health" return plain "OK", "/metrics" returns a small JSON blob, anything
// else is 404.
type Server struct {
	sink *metrics.Sink
}

func NewServer(sink *metrics.Sink) *Server { return &Server{sink: sink} }

type metricsResponse struct {
	UptimeSeconds int64 `json:"uptime_seconds"`
	FakeRequests  int64 `json:"fake_requests"`
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Metrics(w http.ResponseWriter, _ *http.Request) {
	uptime, fake := s.sink.Snapshot()
	writeJSON(w, http.StatusOK, metricsResponse{
		UptimeSeconds: int64(uptime.Seconds()),
		FakeRequests:  fake,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
