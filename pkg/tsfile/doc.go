// Package tsfile is a small in-memory TypeScript source buffer. It supports
// the declaration shapes the type renderers emit (exported interfaces, type
// aliases, import declarations and raw statements) and an OrganizeImports pass
// that merges, de-duplicates and prunes imports the way editor tooling does.
// Formatting is fixed: four-space indentation, double-quoted module specifiers
// and blank lines between top-level statements.
package tsfile
