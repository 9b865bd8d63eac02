// Package static embeds the website's static assets.
package static

import "embed"

//go:embed robots.txt
var FS embed.FS
