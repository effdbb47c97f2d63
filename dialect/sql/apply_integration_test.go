//go:build integration

package sql

import (
	"context"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/syssam/pergen/dialect"
	"github.com/syssam/pergen/dialect/sql/schema"
	"github.com/syssam/pergen/schema/field"
)

// startPostgres runs a disposable PostgreSQL container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("pergen"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestApply_Postgres(t *testing.T) {
	dsn := startPostgres(t)

	dog := schema.NewTable("DOG").
		AddPrimary(schema.KeyColumn("DOG_ID")).
		AddColumn(schema.DataColumn("NAME", field.TypeString, 40)).
		AddColumn(schema.DataColumn("AGE", field.TypeReal, 0)).
		AddColumn(schema.DataColumn("DEATH", field.TypeDate, 0))
	master := schema.NewTable("MASTER").
		AddPrimary(schema.KeyColumn("MASTER_ID"))
	id := schema.KeyColumn("DOG_MASTER_ID")
	id.Increment = true
	junction := schema.NewTable("DOG_MASTER").
		SetJunction().
		AddPrimary(id).
		AddColumn(schema.KeyColumn("DOG_ID")).
		AddColumn(schema.KeyColumn("MASTER_ID"))
	junction.AddForeignKey(schema.NewForeignKey(junction, dog))
	junction.AddForeignKey(schema.NewForeignKey(junction, master))
	script := schema.Script(schema.Postgres{}, []*schema.Table{dog, master, junction})

	drv, err := Open(dialect.Postgres, dsn)
	require.NoError(t, err)
	defer drv.Close()

	ctx := context.Background()
	stats, err := Apply(ctx, drv, script)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalExecs)

	rows, err := drv.Query(ctx, "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name")
	require.NoError(t, err)
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"dog", "dog_master", "master"}, tables)

	_, err = drv.Exec(ctx, "INSERT INTO DOG_MASTER(DOG_ID, MASTER_ID) VALUES($1, $2)", 1, 1)
	require.Error(t, err, "foreign keys are in place")
}
