package tsfile

import (
	"path"
	"strings"
)

const indent = "    "

// PropertySignature is one member of an interface declaration.
type PropertySignature struct {
	Name     string
	Optional bool
	Type     string
	Docs     []string
}

// InterfaceDecl describes an interface to add to a file.
type InterfaceDecl struct {
	Name       string
	Exported   bool
	Docs       []string
	Properties []PropertySignature
}

// TypeAliasDecl describes a type alias to add to a file.
type TypeAliasDecl struct {
	Name     string
	Exported bool
	Docs     []string
	Type     string
}

// ImportDecl describes an import declaration. Symbols are named imports.
type ImportDecl struct {
	Module   string
	Symbols  []string
	TypeOnly bool
}

// Statement is a raw top-level statement. Name, when set, is the identifier
// the statement declares so import pruning can detect local declarations.
type Statement struct {
	Name string
	Text string
}

type declaration interface {
	declaredName() string
	text() string
}

// SourceFile accumulates declarations for one output module. It is not safe
// for concurrent use; each render owns its file.
type SourceFile struct {
	name            string
	imports         []ImportDecl
	decls           []declaration
	trailingNewline bool
}

// NewSourceFile creates an empty file. name is the file path relative to the
// output directory, e.g. "TypeTest.ts".
func NewSourceFile(name string) *SourceFile {
	return &SourceFile{name: name}
}

// Name returns the file path the buffer was created with.
func (f *SourceFile) Name() string {
	return f.name
}

// BaseName returns the file name without directory and extension.
func (f *SourceFile) BaseName() string {
	base := path.Base(f.name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Interface is a handle to an interface already added to a file.
type Interface struct {
	decl InterfaceDecl
}

// AddInterface appends an interface declaration and returns a handle that can
// receive further properties.
func (f *SourceFile) AddInterface(decl InterfaceDecl) *Interface {
	decl.Properties = append([]PropertySignature(nil), decl.Properties...)
	iface := &Interface{decl: decl}
	f.decls = append(f.decls, iface)
	return iface
}

// Name returns the interface name.
func (i *Interface) Name() string {
	return i.decl.Name
}

// AddProperty appends a property to the interface.
func (i *Interface) AddProperty(prop PropertySignature) {
	i.decl.Properties = append(i.decl.Properties, prop)
}

// AddDocs appends JSDoc lines to the interface.
func (i *Interface) AddDocs(lines ...string) {
	i.decl.Docs = append(i.decl.Docs, lines...)
}

// Properties returns a copy of the interface members.
func (i *Interface) Properties() []PropertySignature {
	return append([]PropertySignature(nil), i.decl.Properties...)
}

func (i *Interface) declaredName() string {
	return i.decl.Name
}

func (i *Interface) text() string {
	var sb strings.Builder
	writeDocs(&sb, "", i.decl.Docs)
	if i.decl.Exported {
		sb.WriteString("export ")
	}
	sb.WriteString("interface ")
	sb.WriteString(i.decl.Name)
	sb.WriteString(" {\n")
	for _, prop := range i.decl.Properties {
		writeDocs(&sb, indent, prop.Docs)
		sb.WriteString(indent)
		sb.WriteString(prop.Name)
		if prop.Optional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(prop.Type)
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

type typeAlias struct {
	decl TypeAliasDecl
}

// AddTypeAlias appends a type alias declaration.
func (f *SourceFile) AddTypeAlias(decl TypeAliasDecl) {
	f.decls = append(f.decls, &typeAlias{decl: decl})
}

func (a *typeAlias) declaredName() string {
	return a.decl.Name
}

func (a *typeAlias) text() string {
	var sb strings.Builder
	writeDocs(&sb, "", a.decl.Docs)
	if a.decl.Exported {
		sb.WriteString("export ")
	}
	sb.WriteString("type ")
	sb.WriteString(a.decl.Name)
	sb.WriteString(" = ")
	sb.WriteString(a.decl.Type)
	sb.WriteString(";")
	return sb.String()
}

type rawStatement struct {
	stmt Statement
}

// AddStatement appends a raw statement verbatim.
func (f *SourceFile) AddStatement(stmt Statement) {
	stmt.Text = strings.TrimRight(stmt.Text, "\n")
	f.decls = append(f.decls, &rawStatement{stmt: stmt})
}

func (s *rawStatement) declaredName() string {
	return s.stmt.Name
}

func (s *rawStatement) text() string {
	return s.stmt.Text
}

// AddImportDeclaration appends an import declaration. Duplicates are kept
// until OrganizeImports runs.
func (f *SourceFile) AddImportDeclaration(decl ImportDecl) {
	decl.Symbols = append([]string(nil), decl.Symbols...)
	f.imports = append(f.imports, decl)
}

// Imports returns a copy of the current import declarations.
func (f *SourceFile) Imports() []ImportDecl {
	out := make([]ImportDecl, len(f.imports))
	for idx, decl := range f.imports {
		decl.Symbols = append([]string(nil), decl.Symbols...)
		out[idx] = decl
	}
	return out
}

// FullText renders the file.
func (f *SourceFile) FullText() string {
	var sb strings.Builder
	for _, decl := range f.imports {
		sb.WriteString(renderImport(decl))
		sb.WriteString("\n")
	}
	if len(f.imports) > 0 && len(f.decls) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(f.body())

	out := sb.String()
	if f.trailingNewline {
		out = strings.TrimRight(out, "\n")
		if out != "" {
			out += "\n"
		}
	}
	return out
}

func (f *SourceFile) body() string {
	parts := make([]string, 0, len(f.decls))
	for _, decl := range f.decls {
		parts = append(parts, decl.text())
	}
	return strings.Join(parts, "\n\n")
}

func renderImport(decl ImportDecl) string {
	var sb strings.Builder
	sb.WriteString("import ")
	if decl.TypeOnly {
		sb.WriteString("type ")
	}
	sb.WriteString("{ ")
	sb.WriteString(strings.Join(decl.Symbols, ", "))
	sb.WriteString(" } from \"")
	sb.WriteString(decl.Module)
	sb.WriteString("\";")
	return sb.String()
}

func writeDocs(sb *strings.Builder, prefix string, docs []string) {
	if len(docs) == 0 {
		return
	}
	sb.WriteString(prefix)
	sb.WriteString("/**\n")
	for _, doc := range docs {
		for _, line := range strings.Split(doc, "\n") {
			sb.WriteString(prefix)
			if line == "" {
				sb.WriteString(" *\n")
				continue
			}
			sb.WriteString(" * ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(prefix)
	sb.WriteString(" */\n")
}
