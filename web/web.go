// Package web holds the static assets served by the HTTP layer.
package web

import (
	_ "embed"
)

// IndexHTML is the single-page dashboard served at "/".
//
//go:embed index.html
var IndexHTML []byte
