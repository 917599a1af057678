// Package assets holds the files the service falls back to when no
// QUESTIONS_PATH or INDEX_PATH is configured.
package assets

import _ "embed"

//go:embed questions.json
var Questions []byte

//go:embed index.html
var IndexHTML []byte
