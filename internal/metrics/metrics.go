package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastStatus      int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts a call to an upstream endpoint along with its status and latency.
// A zero status means no response was received.
func (r *Recorder) RecordUpstreamCall(endpoint string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.stats[endpoint] = stats
	}
	stats.calls++
	stats.lastStatus = status
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, status, duration, err)
	}
}

// RecordHTTPRequest tracks basic inbound HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one upstream endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastStatus      int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastStatus:      stats.lastStatus,
		LastCallLatency: stats.lastCallLatency,
	}
}

// UpstreamCalls returns the total calls recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed calls recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}
