package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/pergen/dialect/sql/schema"
	"github.com/syssam/pergen/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema.pergen]",
	Short: "Validate a schema",
	Long:  `Parse and analyze a schema: relations, names and unique clauses, then check the
tables of its script. Nothing is written.`,
	Example: `  # Validate a schema file
  pergen validate db/kennel.pergen

  # Validate the schema of the config file
  pergen validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := cli.LoadGraph(cfg, logger)
		if err != nil {
			return err
		}
		report := schema.Check(g.Tables())
		if err := report.Err(); err != nil {
			return cli.SchemaError("checking tables", err)
		}

		if !quiet {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Found %d entities:\n", color.GreenString("Schema is valid."), len(g.Nodes))
			for _, t := range g.Nodes {
				fmt.Fprintf(out, "  - %s (table %s, %d fields, %d relations)\n", t.Name, t.Table(), len(t.Fields), len(t.Edges))
			}
			if tables := g.M2MTables(); len(tables) > 0 {
				fmt.Fprintf(out, "Junction tables:\n")
				for _, e := range tables {
					fmt.Fprintf(out, "  - %s\n", e.Table)
				}
			}
			for _, w := range report.Warnings {
				fmt.Fprintf(out, "%s %s\n", color.YellowString("Warning:"), w)
			}
		}
		return nil
	},
}
