package render

import (
	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

func entryFieldType(ctx *Context, name string) string {
	ctx.Imports.Add(TypeImport(ModuleContentful, "EntryFields"))
	return "EntryFields." + name
}

func entryFieldRenderer(name string) FieldRenderer {
	return func(_ schema.Field, ctx *Context) string {
		return entryFieldType(ctx, name)
	}
}

// renderSymbol narrows to a literal union when the field restricts its values.
func renderSymbol(field schema.Field, ctx *Context) string {
	if values := field.InValues(); len(values) > 0 {
		return renderLiteralUnion(values)
	}
	return entryFieldType(ctx, "Symbol")
}

func renderText(field schema.Field, ctx *Context) string {
	if values := field.InValues(); len(values) > 0 {
		return renderLiteralUnion(values)
	}
	return entryFieldType(ctx, "Text")
}

func renderLiteralUnion(values []string) string {
	literals := make([]string, len(values))
	for idx, value := range values {
		literals[idx] = RenderTypeLiteral(value)
	}
	return RenderTypeUnion(literals...)
}

func renderArray(field schema.Field, ctx *Context) string {
	if field.Items == nil {
		panic(errors.AssertionFailedf("render: array field %q has no items", field.ID))
	}
	return RenderTypeArray(ctx.RenderFieldType(field.Items.AsField(field.ID)))
}

func renderLink(field schema.Field, ctx *Context) string {
	switch field.LinkType {
	case schema.LinkTypeAsset:
		ctx.Imports.Add(TypeImport(ModuleContentful, "Asset"))
		return "Asset"
	case schema.LinkTypeEntry:
		return renderEntryLink(field, ctx)
	default:
		panic(errors.AssertionFailedf("render: link field %q has unsupported link type %q", field.ID, field.LinkType))
	}
}

// renderEntryLink renders Entry<...> over the skeletons of every allowed
// content type and registers one skeleton import per linked type. Without
// linkContentType validations any entry is accepted.
func renderEntryLink(field schema.Field, ctx *Context) string {
	ctx.Imports.Add(TypeImport(ModuleContentful, "Entry"))

	ids := field.LinkContentTypes()
	if len(ids) == 0 {
		ctx.Imports.Add(TypeImport(ModuleContentful, "EntrySkeletonType"))
		return RenderTypeGeneric("Entry", "EntrySkeletonType")
	}

	skeletons := make([]string, len(ids))
	for idx, id := range ids {
		skeletons[idx] = ctx.ModuleSkeletonName(id)
		ctx.Imports.Add(ctx.SkeletonImport(id))
	}
	return RenderTypeGeneric("Entry", RenderTypeUnion(skeletons...))
}
