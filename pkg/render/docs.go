package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

// Annotator supplies JSDoc lines for the declarations of a content type. A nil
// or empty result leaves the declaration undocumented.
type Annotator interface {
	FieldsInterface(ct schema.ContentType, ctx *Context) []string
	Field(ct schema.ContentType, field schema.Field, ctx *Context) []string
	Skeleton(ct schema.ContentType, ctx *Context) []string
	Entry(ct schema.ContentType, ctx *Context) []string
}

// DocRenderer builds JSDoc from content type and field metadata. Names and
// descriptions are authored in the content platform, so they are reduced to
// plain text before they reach a comment.
type DocRenderer struct {
	policy *bluemonday.Policy
}

var _ Annotator = (*DocRenderer)(nil)

// NewDocRenderer returns a DocRenderer that strips all markup.
func NewDocRenderer() *DocRenderer {
	return &DocRenderer{policy: bluemonday.StrictPolicy()}
}

// FieldsInterface names the fields interface and the entry it belongs to.
func (d *DocRenderer) FieldsInterface(ct schema.ContentType, ctx *Context) []string {
	name := ctx.ModuleFieldsName(ct.ID())
	return []string{
		fmt.Sprintf("Fields type definition for content type '%s'", ctx.ModuleName(ct.ID())),
		"@name " + name,
		fmt.Sprintf("@type {%s}", name),
		"@memberof " + ctx.ModuleName(ct.ID()),
	}
}

// Field labels a property with its display name and localization. Disabled
// fields are marked deprecated.
func (d *DocRenderer) Field(ct schema.ContentType, field schema.Field, ctx *Context) []string {
	title := fmt.Sprintf("Field type definition for field '%s'", field.ID)
	if label := d.sanitize(field.Name); label != "" {
		title += fmt.Sprintf(" (%s)", label)
	}
	lines := []string{
		title,
		"@name " + field.ID,
		fmt.Sprintf("@localized %t", field.Localized),
	}
	if field.Disabled {
		lines = append(lines, "@deprecated disabled in the editing interface")
	}
	return lines
}

// Skeleton describes the skeleton interface, using the content type
// description as its summary.
func (d *DocRenderer) Skeleton(ct schema.ContentType, ctx *Context) []string {
	title := fmt.Sprintf("Content type definition for content type '%s'", ct.ID())
	if label := d.sanitize(ct.Name); label != "" {
		title += fmt.Sprintf(" (%s)", label)
	}
	lines := []string{
		title,
		"@name " + ctx.ModuleSkeletonName(ct.ID()),
		fmt.Sprintf("@type {%s}", ctx.ModuleSkeletonName(ct.ID())),
	}
	if summary := d.sanitize(ct.Description); summary != "" {
		lines = append(lines, "@summary "+summary)
	}
	return lines
}

// Entry describes the public entry alias.
func (d *DocRenderer) Entry(ct schema.ContentType, ctx *Context) []string {
	name := ctx.ModuleName(ct.ID())
	lines := []string{
		fmt.Sprintf("Entry type definition for content type '%s'", ct.ID()),
		"@name " + name,
		fmt.Sprintf("@type {%s}", name),
	}
	if summary := d.sanitize(ct.Description); summary != "" {
		lines = append(lines, "@summary "+summary)
	}
	return lines
}

func (d *DocRenderer) sanitize(value string) string {
	if value == "" {
		return ""
	}
	policy := d.policy
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	clean := html.UnescapeString(policy.Sanitize(value))
	clean = strings.Join(strings.Fields(clean), " ")
	return strings.ReplaceAll(clean, "*/", "*\\/")
}
