package tsfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFile_FullText(t *testing.T) {
	file := NewSourceFile("types/TypeTest.ts")
	assert.Equal(t, "TypeTest", file.BaseName())

	iface := file.AddInterface(InterfaceDecl{Name: "TypeTestFields", Exported: true})
	iface.AddProperty(PropertySignature{Name: "title", Type: "EntryFields.Symbol"})
	iface.AddProperty(PropertySignature{Name: "body", Optional: true, Type: "EntryFields.Text"})
	file.AddTypeAlias(TypeAliasDecl{Name: "TypeTest", Exported: true, Type: "Entry<TypeTestSkeleton>"})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"Entry", "EntryFields"}, TypeOnly: true})

	want := `import type { Entry, EntryFields } from "contentful";

export interface TypeTestFields {
    title: EntryFields.Symbol;
    body?: EntryFields.Text;
}

export type TypeTest = Entry<TypeTestSkeleton>;`
	assert.Equal(t, want, file.FullText())

	file.OrganizeImports(OrganizeOptions{EnsureNewLineAtEndOfFile: true})
	assert.Equal(t, want+"\n", file.FullText())
}

func TestSourceFile_Docs(t *testing.T) {
	file := NewSourceFile("TypeDoc.ts")
	file.AddInterface(InterfaceDecl{
		Name:     "TypeDocFields",
		Exported: true,
		Docs:     []string{"Fields of Doc", "@name TypeDocFields"},
		Properties: []PropertySignature{
			{Name: "title", Type: "string", Docs: []string{"Title"}},
		},
	})

	want := `/**
 * Fields of Doc
 * @name TypeDocFields
 */
export interface TypeDocFields {
    /**
     * Title
     */
    title: string;
}`
	assert.Equal(t, want, file.FullText())
}

func TestSourceFile_EmptyInterfaceAndStatement(t *testing.T) {
	file := NewSourceFile("TypeEmpty.ts")
	file.AddInterface(InterfaceDecl{Name: "TypeEmptyFields", Exported: true})
	file.AddStatement(Statement{Name: "isTypeEmpty", Text: "export function isTypeEmpty(): boolean {\n    return true;\n}\n"})
	file.OrganizeImports(OrganizeOptions{EnsureNewLineAtEndOfFile: true})

	want := "export interface TypeEmptyFields {\n}\n\nexport function isTypeEmpty(): boolean {\n    return true;\n}\n"
	assert.Equal(t, want, file.FullText())
}

func TestOrganizeImports_MergesAndSorts(t *testing.T) {
	file := NewSourceFile("TypeTest.ts")
	file.AddTypeAlias(TypeAliasDecl{
		Name:     "TypeTest",
		Exported: true,
		Type:     "IdScopedEntry<'test', TypeTestSkeleton | TypeLinkedTypeSkeleton | EntryFields.Symbol>",
	})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"EntryFields"}, TypeOnly: true})
	file.AddImportDeclaration(ImportDecl{Module: "./TypeLinkedType", Symbols: []string{"TypeLinkedTypeSkeleton"}, TypeOnly: true})
	file.AddImportDeclaration(ImportDecl{Module: "@custom", Symbols: []string{"IdScopedEntry"}, TypeOnly: true})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"EntryFields"}, TypeOnly: true})

	file.OrganizeImports(OrganizeOptions{})

	require.Equal(t, []ImportDecl{
		{Module: "@custom", Symbols: []string{"IdScopedEntry"}, TypeOnly: true},
		{Module: "contentful", Symbols: []string{"EntryFields"}, TypeOnly: true},
		{Module: "./TypeLinkedType", Symbols: []string{"TypeLinkedTypeSkeleton"}, TypeOnly: true},
	}, file.Imports())
}

func TestOrganizeImports_ValueWinsOverTypeOnly(t *testing.T) {
	file := NewSourceFile("TypeTest.ts")
	file.AddStatement(Statement{Text: "export const x: Entry = createEntry();"})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"Entry"}, TypeOnly: true})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"Entry", "createEntry"}})

	file.OrganizeImports(OrganizeOptions{})

	require.Equal(t, []ImportDecl{
		{Module: "contentful", Symbols: []string{"Entry", "createEntry"}},
	}, file.Imports())
}

func TestOrganizeImports_SplitsTypeOnlyAndValue(t *testing.T) {
	file := NewSourceFile("TypeTest.ts")
	file.AddStatement(Statement{Text: "export const x: Asset = createEntry();"})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"createEntry"}})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"Asset"}, TypeOnly: true})

	file.OrganizeImports(OrganizeOptions{})

	require.Equal(t, []ImportDecl{
		{Module: "contentful", Symbols: []string{"Asset"}, TypeOnly: true},
		{Module: "contentful", Symbols: []string{"createEntry"}},
	}, file.Imports())
}

func TestOrganizeImports_RemovesUnusedAndLocal(t *testing.T) {
	file := NewSourceFile("TypeTest.ts")
	file.AddInterface(InterfaceDecl{
		Name:     "TypeTestSkeleton",
		Exported: true,
		Docs:     []string{"Mentions Asset only in a comment"},
		Properties: []PropertySignature{
			{Name: "self", Type: "TypeTestSkeleton"},
			{Name: "url", Type: `"https://example.com/Entry" | "b"`},
		},
	})
	file.AddImportDeclaration(ImportDecl{Module: "contentful", Symbols: []string{"Asset", "Entry"}, TypeOnly: true})
	file.AddImportDeclaration(ImportDecl{Module: "./TypeTest", Symbols: []string{"TypeTestSkeleton"}, TypeOnly: true})

	file.OrganizeImports(OrganizeOptions{})

	assert.Empty(t, file.Imports())
}

func TestIdentifiers(t *testing.T) {
	got := identifiers("/** Job */ a: EntryFields.Symbol; // Trailing\nb: 'Quoted' | Array<T1>; c: 42;")
	for _, name := range []string{"a", "EntryFields", "Symbol", "b", "Array", "T1", "c"} {
		assert.Contains(t, got, name)
	}
	for _, name := range []string{"Job", "Trailing", "Quoted", "42"} {
		assert.NotContains(t, got, name)
	}
}
