// Package naming derives the TypeScript declaration names used for a content
// type. The render context, the field renderers and the property import helper
// all resolve names through these functions so generated references always
// point at declarations that exist.
package naming

import (
	"strings"
	"unicode"
)

const typePrefix = "Type"

// ModuleName returns the public entry alias name for a content type id. It is
// also the base name of the module the content type is emitted into.
//
//	ModuleName("linkedType")   // "TypeLinkedType"
//	ModuleName("blog-post")    // "TypeBlog__post"
func ModuleName(id string) string {
	name := upperFirst(strings.ReplaceAll(id, "-", "__"))
	if !strings.HasPrefix(id, typePrefix) {
		name = typePrefix + name
	}
	return removeSpace(name)
}

// ModuleFieldsName returns the name of the field-shape interface.
func ModuleFieldsName(id string) string {
	return ModuleName(id) + "Fields"
}

// ModuleSkeletonName returns the name of the skeleton interface.
func ModuleSkeletonName(id string) string {
	return ModuleName(id) + "Skeleton"
}

// ModulePath returns the relative module specifier other files use to import
// declarations of the content type.
func ModulePath(id string) string {
	return "./" + ModuleName(id)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
