package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/pergen/internal/cli"
)

var (
	applyDialect string
	applyDSN     string
)

var applyCmd = &cobra.Command{
	Use:   "apply [schema.pergen]",
	Short: "Create the tables of a schema in an empty database",
	Long: `Render the script of a schema for the dialect and execute its statements in
order on one connection. The database is expected to be empty; existing
tables are never altered.`,
	Example: `  # Bootstrap a SQLite database
  pergen apply db/kennel.pergen --dialect sqlite --dsn file:kennel.db

  # Bootstrap PostgreSQL, DSN from the environment
  PERGEN_DATABASE_DSN=postgres://localhost/kennel pergen apply db/kennel.pergen -d postgres`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Dialect = resolveString(applyDialect, cfg.Dialect)
		cfg.Database.DSN = resolveString(applyDSN, cfg.Database.DSN)

		stats, err := cli.Apply(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		logger.Info("script applied", "dialect", cfg.Dialect, "stats", stats)
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d statements (%s)\n",
				color.GreenString("Applied"), stats.TotalExecs, stats.TotalDuration)
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyDialect, "dialect", "d", "", "SQL dialect: mysql, postgres or sqlite")
	applyCmd.Flags().StringVar(&applyDSN, "dsn", "", "data source name of the database")
}
