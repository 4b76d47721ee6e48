// Package migrations embeds the SQL schema so the binary can migrate without
// a checkout of the repository.
package migrations

import "embed"

// FS holds the NNN_name.up.sql files plus 000_drop_all.sql.
//
//go:embed *.sql
var FS embed.FS
