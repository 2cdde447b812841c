package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// RenderTypeGeneric renders name<args...>.
func RenderTypeGeneric(name string, args ...string) string {
	return name + "<" + strings.Join(args, ", ") + ">"
}

// RenderTypeUnion joins members with " | ". A single member renders as is.
func RenderTypeUnion(members ...string) string {
	return strings.Join(members, " | ")
}

// RenderTypeArray renders an array of elem.
func RenderTypeArray(elem string) string {
	return RenderTypeGeneric("Array", elem)
}

// RenderTypeLiteral renders a double-quoted string literal type. Escapes
// follow JSON, which TypeScript reads back unchanged; invalid UTF-8 becomes
// U+FFFD.
func RenderTypeLiteral(value string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "render: quote literal"))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// RenderSingleQuotedLiteral renders a single-quoted string literal type, the
// style used for content type ids in generic arguments.
func RenderSingleQuotedLiteral(value string) string {
	quoted := RenderTypeLiteral(value)
	inner := quoted[1 : len(quoted)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `'`, `\'`)
	return "'" + inner + "'"
}
