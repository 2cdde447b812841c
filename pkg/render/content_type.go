package render

import (
	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/internal/templates"
	"github.com/goliatone/go-cftypes/pkg/schema"
	"github.com/goliatone/go-cftypes/pkg/tsfile"
)

// Renderer appends the declarations of one content type to file.
type Renderer interface {
	Render(ct schema.ContentType, file *tsfile.SourceFile)
}

// ContextFactory builds the context for one render.
type ContextFactory func() *Context

// DefaultImportsFunc registers imports every file needs regardless of its
// fields.
type DefaultImportsFunc func(r *ContentTypeRenderer, ctx *Context)

// FieldsInterfaceFunc adds the fields interface of ct to file.
type FieldsInterfaceFunc func(r *ContentTypeRenderer, ct schema.ContentType, file *tsfile.SourceFile, ctx *Context)

// FieldFunc renders one property of the fields interface.
type FieldFunc func(r *ContentTypeRenderer, field schema.Field, ctx *Context) tsfile.PropertySignature

// FieldTypeFunc renders the type expression of one field.
type FieldTypeFunc func(r *ContentTypeRenderer, field schema.Field, ctx *Context) string

// SkeletonFunc describes the skeleton interface of ct.
type SkeletonFunc func(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.InterfaceDecl

// EntryFunc describes the public entry alias of ct.
type EntryFunc func(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.TypeAliasDecl

// EntryTypeFunc renders the right-hand side of the entry alias and registers
// the imports it needs.
type EntryTypeFunc func(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) string

// TypeGuardFunc renders a runtime guard statement for ct.
type TypeGuardFunc func(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.Statement

// Option customises a ContentTypeRenderer.
type Option func(*ContentTypeRenderer)

// ContentTypeRenderer renders the fields interface, skeleton interface and
// entry alias of a content type. Every step can be replaced through options;
// replacements receive the renderer so they can fall back to the defaults.
type ContentTypeRenderer struct {
	newContext      ContextFactory
	defaultImports  DefaultImportsFunc
	fieldsInterface FieldsInterfaceFunc
	field           FieldFunc
	fieldType       FieldTypeFunc
	skeleton        SkeletonFunc
	entry           EntryFunc
	entryType       EntryTypeFunc
	typeGuard       TypeGuardFunc
	annotator       Annotator
}

var _ Renderer = (*ContentTypeRenderer)(nil)

// NewContentTypeRenderer returns a renderer with the default steps, adjusted by
// opts.
func NewContentTypeRenderer(opts ...Option) *ContentTypeRenderer {
	r := &ContentTypeRenderer{
		newContext:      NewContext,
		defaultImports:  func(*ContentTypeRenderer, *Context) {},
		fieldsInterface: DefaultRenderFieldsInterface,
		field:           DefaultRenderField,
		fieldType:       DefaultRenderFieldType,
		skeleton:        DefaultRenderSkeleton,
		entry:           DefaultRenderEntry,
		entryType:       DefaultRenderEntryType,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithContextFactory replaces context construction.
func WithContextFactory(factory ContextFactory) Option {
	return func(r *ContentTypeRenderer) {
		if factory != nil {
			r.newContext = factory
		}
	}
}

// WithRegistry builds every context on top of reg.
func WithRegistry(reg *Registry) Option {
	return func(r *ContentTypeRenderer) {
		if reg != nil {
			r.newContext = func() *Context { return NewContextWithRegistry(reg) }
		}
	}
}

// WithDefaultImports sets the default import step.
func WithDefaultImports(fn DefaultImportsFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.defaultImports = fn
		}
	}
}

// WithFieldsInterfaceRenderer replaces the fields interface step.
func WithFieldsInterfaceRenderer(fn FieldsInterfaceFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.fieldsInterface = fn
		}
	}
}

// WithFieldRenderer replaces property rendering.
func WithFieldRenderer(fn FieldFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.field = fn
		}
	}
}

// WithFieldTypeRenderer replaces the type expression of properties while
// keeping the default name and optionality.
func WithFieldTypeRenderer(fn FieldTypeFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.fieldType = fn
		}
	}
}

// WithSkeletonRenderer replaces the skeleton step.
func WithSkeletonRenderer(fn SkeletonFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.skeleton = fn
		}
	}
}

// WithEntryRenderer replaces the entry alias step.
func WithEntryRenderer(fn EntryFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.entry = fn
		}
	}
}

// WithEntryTypeRenderer replaces the right-hand side of the entry alias.
func WithEntryTypeRenderer(fn EntryTypeFunc) Option {
	return func(r *ContentTypeRenderer) {
		if fn != nil {
			r.entryType = fn
		}
	}
}

// WithTypeGuard appends a guard statement after the entry alias.
func WithTypeGuard(fn TypeGuardFunc) Option {
	return func(r *ContentTypeRenderer) {
		r.typeGuard = fn
	}
}

// WithDocRenderer attaches JSDoc from annotator to every declaration.
func WithDocRenderer(annotator Annotator) Option {
	return func(r *ContentTypeRenderer) {
		r.annotator = annotator
	}
}

// Render appends the declarations of ct to file, then flushes the collected
// imports and organizes them. A field kind with no renderer panics.
func (r *ContentTypeRenderer) Render(ct schema.ContentType, file *tsfile.SourceFile) {
	ctx := r.CreateContext()
	ctx.claim()

	r.defaultImports(r, ctx)
	r.fieldsInterface(r, ct, file, ctx)
	file.AddInterface(r.skeleton(r, ct, ctx))
	file.AddTypeAlias(r.entry(r, ct, ctx))
	if r.typeGuard != nil {
		file.AddStatement(r.typeGuard(r, ct, ctx))
	}

	for _, req := range ctx.Imports.Requirements() {
		file.AddImportDeclaration(tsfile.ImportDecl{
			Module:   req.Module,
			Symbols:  []string{req.Symbol},
			TypeOnly: req.TypeOnly,
		})
	}
	file.OrganizeImports(tsfile.OrganizeOptions{EnsureNewLineAtEndOfFile: true})
}

// CreateContext returns a fresh context from the configured factory.
func (r *ContentTypeRenderer) CreateContext() *Context {
	return r.newContext()
}

// RenderField runs the configured property step.
func (r *ContentTypeRenderer) RenderField(field schema.Field, ctx *Context) tsfile.PropertySignature {
	return r.field(r, field, ctx)
}

// RenderFieldType runs the configured field type step.
func (r *ContentTypeRenderer) RenderFieldType(field schema.Field, ctx *Context) string {
	return r.fieldType(r, field, ctx)
}

// RenderEntryType runs the configured entry type step.
func (r *ContentTypeRenderer) RenderEntryType(ct schema.ContentType, ctx *Context) string {
	return r.entryType(r, ct, ctx)
}

// Annotator returns the configured doc annotator, nil when docs are off.
func (r *ContentTypeRenderer) Annotator() Annotator {
	return r.annotator
}

// DefaultRenderFieldsInterface adds the fields interface with one property per
// field, merging the skeleton imports of linked content types.
func DefaultRenderFieldsInterface(r *ContentTypeRenderer, ct schema.ContentType, file *tsfile.SourceFile, ctx *Context) {
	decl := tsfile.InterfaceDecl{
		Name:     ctx.ModuleFieldsName(ct.ID()),
		Exported: true,
	}
	if r.annotator != nil {
		decl.Docs = r.annotator.FieldsInterface(ct, ctx)
	}
	iface := file.AddInterface(decl)

	for _, field := range ct.Fields {
		prop := r.RenderField(field, ctx)
		if r.annotator != nil && len(prop.Docs) == 0 {
			prop.Docs = r.annotator.Field(ct, field, ctx)
		}
		iface.AddProperty(prop)
		ctx.Imports.Merge(PropertyImports(field, ctx, file.BaseName()))
	}
}

// DefaultRenderField names the property after the field id and marks it
// optional when the field is omitted or not required.
func DefaultRenderField(r *ContentTypeRenderer, field schema.Field, ctx *Context) tsfile.PropertySignature {
	return tsfile.PropertySignature{
		Name:     field.ID,
		Optional: field.IsOptional(),
		Type:     r.RenderFieldType(field, ctx),
	}
}

// DefaultRenderFieldType dispatches through the context's registry.
func DefaultRenderFieldType(_ *ContentTypeRenderer, field schema.Field, ctx *Context) string {
	return ctx.RenderFieldType(field)
}

// DefaultRenderSkeleton pairs the fields interface with the content type id.
// It never dispatches and never registers imports.
func DefaultRenderSkeleton(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.InterfaceDecl {
	decl := tsfile.InterfaceDecl{
		Name:     ctx.ModuleSkeletonName(ct.ID()),
		Exported: true,
		Properties: []tsfile.PropertySignature{
			{Name: "fields", Type: ctx.ModuleFieldsName(ct.ID())},
			{Name: "contentTypeId", Type: "string"},
		},
	}
	if r.annotator != nil {
		decl.Docs = r.annotator.Skeleton(ct, ctx)
	}
	return decl
}

// DefaultRenderEntry exports the entry alias under the module name.
func DefaultRenderEntry(r *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.TypeAliasDecl {
	decl := tsfile.TypeAliasDecl{
		Name:     ctx.ModuleName(ct.ID()),
		Exported: true,
		Type:     r.RenderEntryType(ct, ctx),
	}
	if r.annotator != nil {
		decl.Docs = r.annotator.Entry(ct, ctx)
	}
	return decl
}

// DefaultRenderEntryType renders Entry<TypeXSkeleton>.
func DefaultRenderEntryType(_ *ContentTypeRenderer, ct schema.ContentType, ctx *Context) string {
	ctx.Imports.Add(TypeImport(ModuleContentful, "Entry"))
	return RenderTypeGeneric("Entry", ctx.ModuleReferenceName(ct.ID()))
}

// RenderEntryTypeWithID returns an entry type step rendering
// wrapper<'id', TypeXSkeleton>, importing wrapper type-only from module.
func RenderEntryTypeWithID(wrapper, module string) EntryTypeFunc {
	return func(_ *ContentTypeRenderer, ct schema.ContentType, ctx *Context) string {
		ctx.Imports.Add(TypeImport(module, wrapper))
		return RenderTypeGeneric(wrapper, RenderSingleQuotedLiteral(ct.ID()), ctx.ModuleReferenceName(ct.ID()))
	}
}

// DefaultRenderTypeGuard renders an isTypeX function narrowing any entry to
// the content type by its sys id.
func DefaultRenderTypeGuard(_ *ContentTypeRenderer, ct schema.ContentType, ctx *Context) tsfile.Statement {
	ctx.Imports.Add(TypeImport(ModuleContentful, "Entry"))
	ctx.Imports.Add(TypeImport(ModuleContentful, "EntrySkeletonType"))

	name := "is" + ctx.ModuleName(ct.ID())
	text, err := templates.Default().Render(templates.TypeGuardTemplate, map[string]any{
		"name":  name,
		"param": RenderTypeGeneric("Entry", "EntrySkeletonType"),
		"entry": ctx.ModuleName(ct.ID()),
		"id":    RenderSingleQuotedLiteral(ct.ID()),
	})
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "render: type guard for %q", ct.ID()))
	}
	return tsfile.Statement{Name: name, Text: text}
}
