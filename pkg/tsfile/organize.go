package tsfile

import (
	"sort"
	"strings"
)

// OrganizeOptions tunes OrganizeImports.
type OrganizeOptions struct {
	EnsureNewLineAtEndOfFile bool
}

type importKey struct {
	module string
	symbol string
}

// OrganizeImports consolidates the file's imports:
//
//   - declarations for the same module merge, symbols are de-duplicated;
//   - a symbol imported both type-only and as a value becomes a value import;
//   - symbols no declaration references, or that the file declares itself, are
//     removed;
//   - non-relative modules sort before relative ones, then by specifier, and
//     symbols sort within a declaration. A module with both type-only and value
//     symbols yields the type-only declaration first.
func (f *SourceFile) OrganizeImports(opts OrganizeOptions) {
	used := identifiers(f.body())
	declared := make(map[string]struct{}, len(f.decls))
	for _, decl := range f.decls {
		if name := decl.declaredName(); name != "" {
			declared[name] = struct{}{}
		}
	}

	typeOnly := make(map[importKey]bool)
	modules := make(map[string]struct{})
	for _, decl := range f.imports {
		for _, symbol := range decl.Symbols {
			if _, ok := used[symbol]; !ok {
				continue
			}
			if _, ok := declared[symbol]; ok {
				continue
			}
			key := importKey{module: decl.Module, symbol: symbol}
			if existing, ok := typeOnly[key]; ok {
				typeOnly[key] = existing && decl.TypeOnly
				continue
			}
			typeOnly[key] = decl.TypeOnly
			modules[decl.Module] = struct{}{}
		}
	}

	ordered := make([]string, 0, len(modules))
	for module := range modules {
		ordered = append(ordered, module)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return compareModuleSpecifiers(ordered[i], ordered[j]) < 0
	})

	organized := make([]ImportDecl, 0, len(ordered))
	for _, module := range ordered {
		var typeSymbols, valueSymbols []string
		for key, isTypeOnly := range typeOnly {
			if key.module != module {
				continue
			}
			if isTypeOnly {
				typeSymbols = append(typeSymbols, key.symbol)
			} else {
				valueSymbols = append(valueSymbols, key.symbol)
			}
		}
		if len(typeSymbols) > 0 {
			sort.Strings(typeSymbols)
			organized = append(organized, ImportDecl{Module: module, Symbols: typeSymbols, TypeOnly: true})
		}
		if len(valueSymbols) > 0 {
			sort.Strings(valueSymbols)
			organized = append(organized, ImportDecl{Module: module, Symbols: valueSymbols})
		}
	}

	f.imports = organized
	if opts.EnsureNewLineAtEndOfFile {
		f.trailingNewline = true
	}
}

func compareModuleSpecifiers(a, b string) int {
	aRelative, bRelative := isRelative(a), isRelative(b)
	if aRelative != bRelative {
		if aRelative {
			return 1
		}
		return -1
	}
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isRelative(module string) bool {
	return strings.HasPrefix(module, "./") || strings.HasPrefix(module, "../") || module == "." || module == ".."
}
