package render

import (
	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/pkg/naming"
	"github.com/goliatone/go-cftypes/pkg/schema"
)

// NameFunc maps a content type id to a declaration or module name.
type NameFunc func(id string) string

// FieldRendererLookup resolves the renderer for a field kind.
type FieldRendererLookup func(kind schema.FieldType) FieldRenderer

// Context is the per-render state shared by every field render and the entry
// render of one content type. Naming functions and the renderer lookup are
// read-only once rendering starts; Imports is the only state that changes.
// A context belongs to exactly one Render call.
type Context struct {
	ModuleName          NameFunc
	ModuleFieldsName    NameFunc
	ModuleSkeletonName  NameFunc
	ModuleReferenceName NameFunc
	ModulePath          NameFunc
	FieldRenderer       FieldRendererLookup
	Imports             *ImportSet

	claimed bool
}

// NewContext returns a fresh context wired to the default registry.
func NewContext() *Context {
	return NewContextWithRegistry(defaultRegistry)
}

// NewContextWithRegistry returns a fresh context dispatching through reg.
func NewContextWithRegistry(reg *Registry) *Context {
	return &Context{
		ModuleName:          naming.ModuleName,
		ModuleFieldsName:    naming.ModuleFieldsName,
		ModuleSkeletonName:  naming.ModuleSkeletonName,
		ModuleReferenceName: naming.ModuleSkeletonName,
		ModulePath:          naming.ModulePath,
		FieldRenderer:       reg.Lookup,
		Imports:             NewImportSet(),
	}
}

// RenderFieldType dispatches field through the active renderer lookup.
func (c *Context) RenderFieldType(field schema.Field) string {
	if c.FieldRenderer == nil {
		panic(errors.AssertionFailedf("render: context has no field renderer lookup"))
	}
	renderer := c.FieldRenderer(field.Type)
	if renderer == nil {
		panic(errors.AssertionFailedf("render: no renderer for field %q of kind %q", field.ID, field.Type))
	}
	return renderer(field, c)
}

// SkeletonImport returns the requirement that makes the skeleton of the
// linked content type id available.
func (c *Context) SkeletonImport(id string) ImportRequirement {
	return TypeImport(c.ModulePath(id), c.ModuleSkeletonName(id))
}

func (c *Context) claim() {
	if c.claimed {
		panic(errors.AssertionFailedf("render: context reused across content type renders"))
	}
	c.claimed = true
	if c.Imports == nil {
		c.Imports = NewImportSet()
	}
}
