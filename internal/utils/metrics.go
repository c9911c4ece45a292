package utils

import (
	"sync"
	"time"
)

// Tracks performance metrics across the system
type MetricsCollector struct {
	mu           sync.RWMutex
	requestCount uint64
	errorCount   uint64

	// Maps operation name to list of latencies in nanoseconds
	operationTimes map[string][]int64

	systemStartTime time.Time
}

// OperationStats is the aggregated view of one operation's latencies.
type OperationStats struct {
	Count      int           `json:"count"`
	AvgLatency time.Duration `json:"avgLatencyNs"`
}

// Snapshot is a point-in-time copy of all collected metrics.
type Snapshot struct {
	Requests   uint64                    `json:"requests"`
	Errors     uint64                    `json:"errors"`
	Uptime     time.Duration             `json:"uptimeNs"`
	Operations map[string]OperationStats `json:"operations"`
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		operationTimes:  make(map[string][]int64),
		systemStartTime: time.Now(),
	}
}

func (mc *MetricsCollector) IncrementRequests() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.requestCount++
}

func (mc *MetricsCollector) IncrementErrors() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.errorCount++
}

func (mc *MetricsCollector) AddOperationLatency(operationName string, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.operationTimes[operationName]; !exists {
		mc.operationTimes[operationName] = make([]int64, 0)
	}
	mc.operationTimes[operationName] = append(
		mc.operationTimes[operationName],
		duration.Nanoseconds(),
	)
}

// GetSnapshot aggregates the collected latencies for the health endpoint.
func (mc *MetricsCollector) GetSnapshot() Snapshot {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	ops := make(map[string]OperationStats, len(mc.operationTimes))
	for name, times := range mc.operationTimes {
		var total int64
		for _, t := range times {
			total += t
		}
		stats := OperationStats{Count: len(times)}
		if len(times) > 0 {
			stats.AvgLatency = time.Duration(total / int64(len(times)))
		}
		ops[name] = stats
	}

	return Snapshot{
		Requests:   mc.requestCount,
		Errors:     mc.errorCount,
		Uptime:     time.Since(mc.systemStartTime),
		Operations: ops,
	}
}
