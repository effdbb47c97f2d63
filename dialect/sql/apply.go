package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/pergen/dialect/sql/schema"
)

// ApplyError reports the statement of a script that failed.
type ApplyError struct {
	// Index is the 1-based position of the statement in the script.
	Index     int
	Statement string
	Err       error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("dialect/sql: apply statement %d: %v\n%s", e.Index, e.Err, e.Statement)
}

// Unwrap returns the error of the driver.
func (e *ApplyError) Unwrap() error { return e.Err }

// IsApplyError reports whether err is, or wraps, an ApplyError.
func IsApplyError(err error) bool {
	var e *ApplyError
	return errors.As(err, &e)
}

// Apply executes the statements of a DDL script in order, on a single
// connection of drv. It stops at the first failing statement; statements
// already executed are not undone. The returned statistics cover the
// executed statements, including the failing one.
func Apply(ctx context.Context, drv *Driver, script string, opts ...StatsOption) (stats StatsSnapshot, rerr error) {
	conn, release, err := drv.Session(ctx)
	if err != nil {
		return stats, err
	}
	defer func() { rerr = errors.Join(rerr, release()) }()

	sc := NewStatsConn(conn, opts...)
	defer func() { stats = sc.QueryStats().Stats() }()
	for i, stmt := range schema.Statements(script) {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if _, err := sc.Exec(ctx, stmt); err != nil {
			return stats, &ApplyError{Index: i + 1, Statement: stmt, Err: err}
		}
	}
	return stats, nil
}
