// Package generator drives the content type renderer over a whole export:
// one TypeScript module per content type plus an optional barrel index. It
// also writes the result to disk, checks an output directory for drift and
// regenerates when the export file changes.
package generator
