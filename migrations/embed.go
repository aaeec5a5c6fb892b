// Package migrations содержит схему БД в формате goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
