package tui

import _ "embed"

//go:embed about.md
var aboutMarkdown string
