// Package prompt holds the interactive content type picker used by the CLI.
package prompt
