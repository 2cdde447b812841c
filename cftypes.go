// Package cftypes generates TypeScript declarations from content type
// definitions. It re-exports the common entry points of pkg/generator and
// pkg/render for callers that only need the defaults.
package cftypes

import (
	"context"

	internalloader "github.com/goliatone/go-cftypes/internal/loader"
	"github.com/goliatone/go-cftypes/pkg/generator"
	"github.com/goliatone/go-cftypes/pkg/naming"
	"github.com/goliatone/go-cftypes/pkg/render"
	"github.com/goliatone/go-cftypes/pkg/schema"
	"github.com/goliatone/go-cftypes/pkg/tsfile"
)

// Result aliases generator.Result.
type Result = generator.Result

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalloader.New(schema.NewLoaderOptions(options...))
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate loads the export at source and renders one module per content
// type.
func Generate(ctx context.Context, source schema.Source, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx, generator.Request{Source: source})
}

// GenerateFromDocument renders a pre-loaded export, bypassing the loader.
func GenerateFromDocument(ctx context.Context, doc schema.Document, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx, generator.Request{Document: &doc})
}

// RenderContentType renders a single content type into the text of its
// module. A field kind with no renderer panics.
func RenderContentType(ct schema.ContentType, options ...render.Option) string {
	file := tsfile.NewSourceFile(naming.ModuleName(ct.ID()) + ".ts")
	render.NewContentTypeRenderer(options...).Render(ct, file)
	return file.FullText()
}
