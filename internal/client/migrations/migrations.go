// Package migrations embeds the goose migrations of the client's SQLite
// store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
