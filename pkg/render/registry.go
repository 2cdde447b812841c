package render

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

// FieldRenderer returns the type expression for a field. It may register
// import requirements on ctx.Imports.
type FieldRenderer func(field schema.Field, ctx *Context) string

// Registry maps field kinds to renderers. Lookups are safe for concurrent use,
// so one registry can back any number of simultaneous renders.
type Registry struct {
	mu        sync.RWMutex
	renderers map[schema.FieldType]FieldRenderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[schema.FieldType]FieldRenderer),
	}
}

var defaultRegistry = DefaultRegistry()

// DefaultRegistry returns a new registry with a renderer for every kind in
// schema.FieldTypes.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(schema.FieldTypeSymbol, renderSymbol)
	reg.MustRegister(schema.FieldTypeText, renderText)
	reg.MustRegister(schema.FieldTypeRichText, entryFieldRenderer("RichText"))
	reg.MustRegister(schema.FieldTypeInteger, entryFieldRenderer("Integer"))
	reg.MustRegister(schema.FieldTypeNumber, entryFieldRenderer("Number"))
	reg.MustRegister(schema.FieldTypeBoolean, entryFieldRenderer("Boolean"))
	reg.MustRegister(schema.FieldTypeDate, entryFieldRenderer("Date"))
	reg.MustRegister(schema.FieldTypeLocation, entryFieldRenderer("Location"))
	reg.MustRegister(schema.FieldTypeObject, entryFieldRenderer("Object"))
	reg.MustRegister(schema.FieldTypeArray, renderArray)
	reg.MustRegister(schema.FieldTypeLink, renderLink)
	return reg
}

// Register adds a renderer for kind. Duplicate kinds return an error.
func (r *Registry) Register(kind schema.FieldType, renderer FieldRenderer) error {
	if renderer == nil {
		return errors.Newf("render: renderer for %q is nil", kind)
	}
	if kind == "" {
		return errors.New("render: field kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[kind]; exists {
		return errors.Newf("render: renderer for %q already registered", kind)
	}
	r.renderers[kind] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind schema.FieldType, renderer FieldRenderer) {
	if err := r.Register(kind, renderer); err != nil {
		panic(err)
	}
}

// With returns a copy of the registry where kind renders with renderer,
// replacing any existing entry.
func (r *Registry) With(kind schema.FieldType, renderer FieldRenderer) *Registry {
	clone := r.Clone()
	clone.renderers[kind] = renderer
	return clone
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clone := NewRegistry()
	for kind, renderer := range r.renderers {
		clone.renderers[kind] = renderer
	}
	return clone
}

// Get retrieves the renderer for kind.
func (r *Registry) Get(kind schema.FieldType) (FieldRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[kind]
	return renderer, ok
}

// Lookup returns the renderer for kind. A kind without a renderer is a
// programming error and panics with an assertion failure.
func (r *Registry) Lookup(kind schema.FieldType) FieldRenderer {
	renderer, ok := r.Get(kind)
	if !ok {
		panic(errors.AssertionFailedf("render: no field renderer registered for kind %q", kind))
	}
	return renderer
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []schema.FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]schema.FieldType, 0, len(r.renderers))
	for kind := range r.renderers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Has reports whether a renderer is registered for kind.
func (r *Registry) Has(kind schema.FieldType) bool {
	_, ok := r.Get(kind)
	return ok
}
