// Package migrations embeds the goose SQL migrations so the server binary can
// bring its schema up without files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
