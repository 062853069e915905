// Package static embeds the pages and documents served by the HTTP API.
package static

import "embed"

// FS holds index.html (the help page), openapi.html and openapi.json.
//
//go:embed index.html openapi.html openapi.json
var FS embed.FS
