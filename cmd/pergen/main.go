// Package main provides the pergen command line.
//
// The CLI supports:
//   - generate: Write the DDL script and the Go value objects and DAOs of a schema
//   - validate: Parse and analyze a schema without writing anything
//   - apply: Execute the DDL script of a schema on an empty database
//   - config: Print the effective configuration
//   - version: Print version information
//
// Usage:
//
//	pergen [flags] <command> [schema.pergen]
package main

import (
	"os"

	"github.com/syssam/pergen/internal/cli"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.PrintError(os.Stderr, err))
	}
}
