// Package render turns content types into TypeScript declarations: a fields
// interface, a skeleton interface and an entry alias per content type.
//
// Field kinds dispatch through a Registry. Each render owns a Context carrying
// the naming functions and the imports the rendered expressions need; the
// ContentTypeRenderer flushes those imports into the output file once all
// declarations are in place.
package render
