package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/syssam/pergen/dialect"
)

// driverNames maps a dialect to the name its database/sql driver
// registers under.
var driverNames = map[string]string{
	dialect.MySQL:    "mysql",
	dialect.Postgres: "postgres",
	dialect.SQLite:   "sqlite",
}

// DriverName returns the database/sql driver name of a dialect.
func DriverName(name string) (string, error) {
	if err := dialect.Validate(name); err != nil {
		return "", err
	}
	return driverNames[name], nil
}

// ExecQuerier wraps the standard Exec and Query methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ ExecQuerier = (*sql.DB)(nil)
	_ ExecQuerier = (*sql.Conn)(nil)
	_ ExecQuerier = (*sql.Tx)(nil)
)

// Driver is a database handle bound to a dialect.
type Driver struct {
	Conn
	db *sql.DB
}

// NewDriver creates a new Driver with the given handle and dialect.
func NewDriver(dialectName string, db *sql.DB) *Driver {
	return &Driver{Conn: Conn{db, dialectName}, db: db}
}

// Open opens a database of the given dialect. The driver of the dialect
// must be registered by the caller.
func Open(dialectName, source string) (*Driver, error) {
	name, err := DriverName(dialectName)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(name, source)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open %s: %w", dialectName, err)
	}
	return NewDriver(dialectName, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(dialectName string, db *sql.DB) *Driver {
	return NewDriver(dialectName, db)
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB { return d.db }

// Dialect returns the dialect name of the driver.
func (d *Driver) Dialect() string {
	for _, name := range dialect.Dialects {
		if strings.HasPrefix(d.dialect, name) {
			return name
		}
	}
	return d.dialect
}

// Session reserves a single connection of the pool. Statements executed on
// the returned Conn share the session; the close function releases it.
func (d *Driver) Session(ctx context.Context) (Conn, func() error, error) {
	c, err := d.db.Conn(ctx)
	if err != nil {
		return Conn{}, nil, fmt.Errorf("dialect/sql: reserve connection: %w", err)
	}
	return Conn{c, d.dialect}, c.Close, nil
}

// Close closes the underlying database.
func (d *Driver) Close() error { return d.db.Close() }

// Conn executes statements on an ExecQuerier of a dialect.
type Conn struct {
	ExecQuerier
	dialect string
}

// Exec executes a statement that returns no rows.
func (c Conn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: exec: %w", err)
	}
	return res, nil
}

// Query executes a statement that returns rows.
func (c Conn) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: query: %w", err)
	}
	return rows, nil
}
