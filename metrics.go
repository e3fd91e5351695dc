package tilecode

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTiles is called after each single-point tiling operation.
	// duration is the total time taken.
	RecordTiles(duration time.Duration)

	// RecordBatchTiles is called after each batch tiling operation.
	// points is the number of points tiled, duration is the total time taken.
	RecordBatchTiles(points int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTiles(time.Duration)           {}
func (NoopMetricsCollector) RecordBatchTiles(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TilesCount      atomic.Int64
	TilesTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchPoints     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordTiles implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTiles(duration time.Duration) {
	b.TilesCount.Add(1)
	b.TilesTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatchTiles implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchTiles(points int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchPoints.Add(int64(points))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TilesCount:    b.TilesCount.Load(),
		TilesAvgNanos: b.getAvgTilesNanos(),
		BatchCount:    b.BatchCount.Load(),
		BatchPoints:   b.BatchPoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTilesNanos() int64 {
	count := b.TilesCount.Load()
	if count == 0 {
		return 0
	}
	return b.TilesTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TilesCount    int64
	TilesAvgNanos int64
	BatchCount    int64
	BatchPoints   int64
}
