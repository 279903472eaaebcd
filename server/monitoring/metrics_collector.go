package monitoring

import (
	"sort"
	"sync"
	"time"
)

// maxDurationSamples bounds the latency window used for the average and
// p95 figures.
const maxDurationSamples = 1000

// RequestMetrics aggregates HTTP request metrics for the monitoring
// endpoint. All methods are safe for concurrent use.
type RequestMetrics struct {
	mu sync.RWMutex

	requestsTotal   int64
	requestsSuccess int64
	requestsError   int64

	// Most recent request durations, capped at maxDurationSamples.
	durations []time.Duration

	byEndpoint map[string]*endpointStats

	startTime     time.Time
	lastResetTime time.Time
}

type endpointStats struct {
	Count         int64
	Errors        int64
	TotalDuration time.Duration
}

// NewRequestMetrics creates an empty collector.
func NewRequestMetrics() *RequestMetrics {
	now := time.Now()
	return &RequestMetrics{
		byEndpoint:    make(map[string]*endpointStats),
		startTime:     now,
		lastResetTime: now,
	}
}

// Record registers one completed request. Status codes below 400 count
// as success. The endpoint should be the route pattern, not the raw
// URL, so parameterized routes aggregate into one bucket.
func (rm *RequestMetrics) Record(endpoint string, status int, duration time.Duration) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.requestsTotal++
	if status < 400 {
		rm.requestsSuccess++
	} else {
		rm.requestsError++
	}

	rm.durations = append(rm.durations, duration)
	if len(rm.durations) > maxDurationSamples {
		rm.durations = rm.durations[len(rm.durations)-maxDurationSamples:]
	}

	stats := rm.byEndpoint[endpoint]
	if stats == nil {
		stats = &endpointStats{}
		rm.byEndpoint[endpoint] = stats
	}
	stats.Count++
	if status >= 400 {
		stats.Errors++
	}
	stats.TotalDuration += duration
}

// GetMetrics returns a snapshot of the collected metrics.
func (rm *RequestMetrics) GetMetrics() map[string]interface{} {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	avgDuration := time.Duration(0)
	p95Duration := time.Duration(0)
	if len(rm.durations) > 0 {
		total := time.Duration(0)
		sorted := make([]time.Duration, len(rm.durations))
		copy(sorted, rm.durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		for _, d := range sorted {
			total += d
		}
		avgDuration = total / time.Duration(len(sorted))
		p95Duration = sorted[(len(sorted)*95)/100]
	}

	successRate := 0.0
	if rm.requestsTotal > 0 {
		successRate = float64(rm.requestsSuccess) / float64(rm.requestsTotal) * 100
	}

	uptime := time.Since(rm.startTime).Seconds()
	requestsPerSecond := 0.0
	if uptime > 0 {
		requestsPerSecond = float64(rm.requestsTotal) / uptime
	}

	endpoints := make(map[string]interface{}, len(rm.byEndpoint))
	for endpoint, stats := range rm.byEndpoint {
		avg := time.Duration(0)
		if stats.Count > 0 {
			avg = stats.TotalDuration / time.Duration(stats.Count)
		}
		endpoints[endpoint] = map[string]interface{}{
			"count":           stats.Count,
			"errors":          stats.Errors,
			"avg_duration_ms": avg.Milliseconds(),
		}
	}

	return map[string]interface{}{
		"http": map[string]interface{}{
			"requests_total":      rm.requestsTotal,
			"requests_success":    rm.requestsSuccess,
			"requests_error":      rm.requestsError,
			"success_rate":        successRate,
			"avg_duration_ms":     avgDuration.Milliseconds(),
			"p95_duration_ms":     p95Duration.Milliseconds(),
			"requests_per_second": requestsPerSecond,
		},
		"endpoints": endpoints,
		"system": map[string]interface{}{
			"uptime_seconds": uptime,
			"start_time":     rm.startTime.Format(time.RFC3339),
			"last_reset":     rm.lastResetTime.Format(time.RFC3339),
		},
	}
}

// Reset clears the counters but keeps the start time.
func (rm *RequestMetrics) Reset() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.requestsTotal = 0
	rm.requestsSuccess = 0
	rm.requestsError = 0
	rm.durations = nil
	rm.byEndpoint = make(map[string]*endpointStats)
	rm.lastResetTime = time.Now()
}
