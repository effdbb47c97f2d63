package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pergen/dialect"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
		wantErr bool
	}{
		{dialect.MySQL, "mysql", false},
		{dialect.Postgres, "postgres", false},
		{dialect.SQLite, "sqlite", false},
		{"oracle", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			got, err := DriverName(tt.dialect)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open("oracle", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported dialect "oracle"`)
}

func TestDriver_Dialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	drv := OpenDB(dialect.Postgres, db)
	assert.Equal(t, dialect.Postgres, drv.Dialect())
	assert.Same(t, db, drv.DB())

	drv = OpenDB("sqlite-traced", db)
	assert.Equal(t, dialect.SQLite, drv.Dialect())
}

func TestConn_Exec(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB(dialect.MySQL, db)

	mock.ExpectExec("DELETE FROM DOG WHERE DOG_ID = ?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	res, err := drv.Exec(context.Background(), "DELETE FROM DOG WHERE DOG_ID = ?", 1)
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	mock.ExpectQuery("SELECT DOG_ID FROM DOG").
		WillReturnRows(sqlmock.NewRows([]string{"DOG_ID"}).AddRow(1).AddRow(2))
	rows, err := drv.Query(context.Background(), "SELECT DOG_ID FROM DOG")
	require.NoError(t, err)
	var ids []int64
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Close())
	assert.Equal(t, []int64{1, 2}, ids)

	mock.ExpectExec("DROP TABLE DOG").WillReturnError(assert.AnError)
	_, err = drv.Exec(context.Background(), "DROP TABLE DOG")
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "dialect/sql: exec:")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriver_Session(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB(dialect.SQLite, db)

	conn, release, err := drv.Session(context.Background())
	require.NoError(t, err)
	mock.ExpectExec("PRAGMA foreign_keys = ON").WillReturnResult(sqlmock.NewResult(0, 0))
	_, err = conn.Exec(context.Background(), "PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, release())
	require.NoError(t, mock.ExpectationsWereMet())
}
