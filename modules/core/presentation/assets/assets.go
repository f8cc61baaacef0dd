// Package assets embeds the static files served under /static/.
package assets

import "embed"

//go:embed app.css shell.js
var FS embed.FS
