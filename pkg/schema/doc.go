// Package schema defines the content model consumed by the type renderers:
// content types, their ordered field descriptors and the link constraints that
// shape generated references. It also owns the Source/Document wrappers and
// the decoder for content model exports (JSON or YAML) so loaders stay free of
// parsing concerns. Values are read-only once decoded; renderers never mutate
// them.
package schema
