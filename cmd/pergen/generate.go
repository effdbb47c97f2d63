package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/pergen/internal/cli"
)

var (
	generateTarget    string
	generatePackage   string
	generateDialect   string
	generateHeader    string
	generateFeatures  []string
	generateTemplates []string
	generateWatch     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema.pergen]",
	Short: "Generate the script and the Go code of a schema",
	Long: `Generate script.sql, one value object and one DAO per entity, and the
artifacts of the enabled features. Output goes to the target directory, by
default the directory of the schema.`,
	Example: `  # Generate next to the schema
  pergen generate db/kennel.pergen

  # Generate PostgreSQL code into a package, with the GraphQL schema
  pergen generate db/kennel.pergen --target internal/model --dialect postgres --feature graphql

  # Regenerate on every change of the schema
  pergen generate db/kennel.pergen --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyGenerateFlags(cmd)

		run := func(ctx context.Context) error {
			g, err := cli.Generate(ctx, cfg, logger)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d entities from %s into %s\n",
					color.GreenString("Generated"), len(g.Nodes), cfg.Schema, g.Target)
			}
			return nil
		}
		if !generateWatch {
			return run(cmd.Context())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (Ctrl+C to stop)\n", color.CyanString("Watching"), cfg.Schema)
		}
		return cli.Watch(ctx, cfg.Schema, logger, run)
	},
}

// applyGenerateFlags overrides the configuration with the flags set on cmd.
func applyGenerateFlags(cmd *cobra.Command) {
	cfg.Target = resolveString(generateTarget, cfg.Target)
	cfg.Package = resolveString(generatePackage, cfg.Package)
	cfg.Dialect = resolveString(generateDialect, cfg.Dialect)
	cfg.Header = resolveString(generateHeader, cfg.Header)
	if cmd.Flags().Changed("feature") {
		cfg.Features = generateFeatures
	}
	if cmd.Flags().Changed("template") {
		cfg.Templates = generateTemplates
	}
}

// addGenerateFlags registers the generation flags on cmd.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateTarget, "target", "o", "", "output directory (default: directory of the schema)")
	cmd.Flags().StringVar(&generatePackage, "package", "", "Go package name (default: base name of the target)")
	cmd.Flags().StringVarP(&generateDialect, "dialect", "d", "", "SQL dialect: mysql, postgres or sqlite")
	cmd.Flags().StringVar(&generateHeader, "header", "", "header comment of the generated Go files")
	cmd.Flags().StringSliceVarP(&generateFeatures, "feature", "f", nil, "enable a feature: atlas, graphql (repeatable)")
	cmd.Flags().StringSliceVar(&generateTemplates, "template", nil, "execute a template file on the schema (repeatable)")
}

func init() {
	addGenerateFlags(generateCmd)
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "regenerate when the schema changes")
}
