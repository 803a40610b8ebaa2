package main

// Default limits for CLI commands.
const (
	DefaultListLimit = 50
	// MarkdownWrap is the glamour word-wrap width for rendered detail output.
	MarkdownWrap = 80
)

// Valid output formats.
var (
	validFormats     = []string{"json", "csv", "markdown"}
	validShowFormats = []string{"text", "json", "markdown"}
)
