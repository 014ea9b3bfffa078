// Package web embeds the single-page lookup form served at "/".
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
