// Package migrations embeds the basket schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
