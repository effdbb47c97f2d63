// Package dialect names the database dialects pergen renders scripts and
// DAOs for.
//
// # Supported Dialects
//
//	dialect.MySQL    = "mysql"     // default, MySQL 5 compatible
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// Sub-packages:
//
//   - dialect/sql: script execution against a live database
//   - dialect/sql/schema: table model and DDL rendering
package dialect

import "fmt"

// Database dialects.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Dialects lists the supported dialects, default first.
var Dialects = []string{MySQL, Postgres, SQLite}

// Validate returns an error if name is not a supported dialect.
func Validate(name string) error {
	for _, d := range Dialects {
		if d == name {
			return nil
		}
	}
	return fmt.Errorf("dialect: unsupported dialect %q", name)
}
