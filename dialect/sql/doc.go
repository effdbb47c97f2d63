// Package sql executes rendered DDL scripts against a live database.
//
// It backs the "pergen apply" command: a script produced by
// schema.Script is split into its statements, and the statements run in
// order on a single connection of a fresh database. Every statement is
// timed and counted in a QueryStats value:
//
//	drv, err := sql.Open(dialect.SQLite, "file:test.db")
//	if err != nil {
//	    return err
//	}
//	defer drv.Close()
//	stats, err := sql.Apply(ctx, drv, script, sql.WithSlowThreshold(time.Second))
//	if err != nil {
//	    return err
//	}
//	slog.Info("schema applied", "stats", stats)
//
// Drivers are registered by their packages (go-sql-driver/mysql, lib/pq,
// modernc.org/sqlite); importing them is left to the caller.
package sql
