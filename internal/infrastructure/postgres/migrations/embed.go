// Package migrations embebe las migraciones SQL del esquema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
