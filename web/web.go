// Package web embeds the dashboard's HTML templates.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
