// Package pergen is the runtime support of the code generated by pergen:
// the connection the DAOs run on, their errors, and the helpers shared by
// every generated DAO.
package pergen

import (
	"context"
	"database/sql"
	"fmt"
)

// Conn is the connection a generated DAO runs its statements on.
// *sql.DB, *sql.Conn and *sql.Tx implement it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Conn = (*sql.DB)(nil)
	_ Conn = (*sql.Conn)(nil)
	_ Conn = (*sql.Tx)(nil)
)

// NextID runs a "SELECT MAX(<T>_ID) AS NEWID FROM <T>" query and returns
// the next free identifier: the maximum plus one, or 0 on an empty table.
func NextID(ctx context.Context, conn Conn, query string) (int64, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	var max sql.NullInt64
	if rows.Next() {
		if err := rows.Scan(&max); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Int64 + 1, nil
}

// SelectIDs runs a query returning one identifier column and collects the
// identifiers in result-set order.
func SelectIDs(ctx context.Context, conn Conn, query string, args ...any) ([]int64, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Value returns the statement argument of a member: nil for an unset
// member, the pointed value otherwise.
func Value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Ptr returns the member value of a scanned column: nil for NULL.
func Ptr[T any](v sql.Null[T]) *T {
	if !v.Valid {
		return nil
	}
	return &v.V
}
