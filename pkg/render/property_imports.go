package render

import "github.com/goliatone/go-cftypes/pkg/schema"

// PropertyImports returns the skeleton imports a field's type expression needs
// for the content types it links to: Link fields to entries and arrays of
// them. Linked types whose module name equals ignoreModule (the module being
// rendered) are skipped. Names and module paths come from ctx, the same
// functions the entry link renderer uses.
func PropertyImports(field schema.Field, ctx *Context, ignoreModule string) []ImportRequirement {
	var ids []string
	switch {
	case field.LinksEntries():
		ids = field.LinkContentTypes()
	case field.Type == schema.FieldTypeArray && field.Items != nil:
		items := field.Items.AsField(field.ID)
		if items.LinksEntries() {
			ids = items.LinkContentTypes()
		}
	}

	out := make([]ImportRequirement, 0, len(ids))
	for _, id := range ids {
		if ctx.ModuleName(id) == ignoreModule {
			continue
		}
		out = append(out, ctx.SkeletonImport(id))
	}
	return out
}
