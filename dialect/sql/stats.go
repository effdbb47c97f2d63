package sql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// QueryStats holds statement execution statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowQueries is the count of statements exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of failed statements.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *QueryStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalExecs.Store(0)
	s.TotalDuration.Store(0)
	s.SlowQueries.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of statement statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgQueryDuration returns the average statement duration.
func (s StatsSnapshot) AvgQueryDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgQueryDuration(),
		s.SlowQueries, s.Errors,
	)
}

// LogValue implements slog.LogValuer.
func (s StatsSnapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("queries", s.TotalQueries),
		slog.Int64("execs", s.TotalExecs),
		slog.Duration("duration", s.TotalDuration),
		slog.Int64("slow", s.SlowQueries),
		slog.Int64("errors", s.Errors),
	)
}

// SlowQueryHook is a function called when a slow statement is detected.
type SlowQueryHook func(ctx context.Context, query string, duration time.Duration)

// StatsConn wraps a Conn with statistics collection.
type StatsConn struct {
	Conn
	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook
	logger        *slog.Logger
}

// StatsOption configures the StatsConn.
type StatsOption func(*StatsConn)

// WithSlowThreshold sets the threshold for slow statement detection.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsConn) {
		s.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback function for slow statements.
func WithSlowQueryHook(hook SlowQueryHook) StatsOption {
	return func(s *StatsConn) {
		s.slowHook = hook
	}
}

// WithLogger sets the logger of executed and slow statements.
// Default is slog.Default().
func WithLogger(l *slog.Logger) StatsOption {
	return func(s *StatsConn) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStats records into the given statistics instead of a fresh value.
func WithStats(stats *QueryStats) StatsOption {
	return func(s *StatsConn) {
		if stats != nil {
			s.stats = stats
		}
	}
}

// NewStatsConn wraps a Conn with statistics collection. Slow statements are
// logged at Warn level, every statement at Debug level.
func NewStatsConn(c Conn, opts ...StatsOption) *StatsConn {
	s := &StatsConn{
		Conn:          c,
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryStats returns the underlying QueryStats for reading statistics.
func (c *StatsConn) QueryStats() *QueryStats {
	return c.stats
}

// Exec executes a statement and records statistics.
func (c *StatsConn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := c.Conn.Exec(ctx, query, args...)
	c.record(ctx, query, start, err, false)
	return res, err
}

// Query executes a query and records statistics.
func (c *StatsConn) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := c.Conn.Query(ctx, query, args...)
	c.record(ctx, query, start, err, true)
	return rows, err
}

func (c *StatsConn) record(ctx context.Context, query string, start time.Time, err error, isQuery bool) {
	duration := time.Since(start)
	if isQuery {
		c.stats.TotalQueries.Add(1)
	} else {
		c.stats.TotalExecs.Add(1)
	}
	c.stats.TotalDuration.Add(int64(duration))
	if err != nil {
		c.stats.Errors.Add(1)
	}
	c.logger.DebugContext(ctx, "statement executed", "duration", duration, "query", query)
	if duration > c.slowThreshold {
		c.stats.SlowQueries.Add(1)
		c.logger.WarnContext(ctx, "slow statement detected", "duration", duration, "query", query)
		if c.slowHook != nil {
			c.slowHook(ctx, query, duration)
		}
	}
}
