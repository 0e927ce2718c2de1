package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of connection pool pressure.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
	WaitMs    int64 `json:"wait_ms"`
	MaxOpen   int   `json:"max_open"`
}

// HealthStatus reports database reachability plus pool statistics. Pool
// stats are included even on failure so a saturated pool is visible.
type HealthStatus struct {
	Healthy        bool      `json:"healthy"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Pool           PoolStats `json:"pool"`
}

// Health pings the database and returns the current pool snapshot.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	pingErr := db.PingContext(ctx)

	stats := db.Stats()
	status := &HealthStatus{
		Healthy:        pingErr == nil,
		ResponseTimeMs: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			WaitCount: stats.WaitCount,
			WaitMs:    stats.WaitDuration.Milliseconds(),
			MaxOpen:   stats.MaxOpenConnections,
		},
	}
	return status, pingErr
}
