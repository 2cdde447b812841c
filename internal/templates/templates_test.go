package templates

import (
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestRender_Index(t *testing.T) {
	data := map[string]any{
		"modules": []map[string]any{
			{"name": "TypeAuthor", "fields": "TypeAuthorFields", "skeleton": "TypeAuthorSkeleton", "guard": "isTypeAuthor", "path": "./TypeAuthor"},
			{"name": "TypePost", "fields": "TypePostFields", "skeleton": "TypePostSkeleton", "guard": "isTypePost", "path": "./TypePost"},
		},
		"guards": true,
	}

	got, err := Default().Render(IndexTemplate, data)
	if err != nil {
		t.Fatalf("render index: %v", err)
	}

	want := "export type { TypeAuthor, TypeAuthorFields, TypeAuthorSkeleton } from './TypeAuthor';\n" +
		"export { isTypeAuthor } from './TypeAuthor';\n" +
		"export type { TypePost, TypePostFields, TypePostSkeleton } from './TypePost';\n" +
		"export { isTypePost } from './TypePost';\n"
	if diff := cmp.Diff(want, strings.TrimRight(got, "\n")+"\n"); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TypeGuardKeepsQuotes(t *testing.T) {
	got, err := Default().Render(TypeGuardTemplate, map[string]any{
		"name":  "isTypeAuthor",
		"param": "Entry<EntrySkeletonType>",
		"entry": "TypeAuthor",
		"id":    "'author'",
	})
	if err != nil {
		t.Fatalf("render guard: %v", err)
	}

	want := "export function isTypeAuthor(entry: Entry<EntrySkeletonType>): entry is TypeAuthor {\n" +
		"    return entry.sys.contentType.sys.id === 'author';\n" +
		"}"
	if diff := cmp.Diff(want, strings.TrimRight(got, "\n")); diff != "" {
		t.Fatalf("guard mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderString_NoEscaping(t *testing.T) {
	got, err := Default().RenderString("{{ a }} & {{ b }}", map[string]any{"a": "<T>", "b": "'x'"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "<T> & 'x'" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := Default().RenderString("{% if %}", nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNew_WithFSAndGlobals(t *testing.T) {
	files := fstest.MapFS{
		"banner.tpl": {Data: []byte("// {{ tool }} {{ version }}")},
	}
	engine, err := New(WithFS(files), WithGlobalData(map[string]any{"tool": "cftypes"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("banner.tpl", map[string]any{"version": "1"})
	if err != nil {
		t.Fatalf("render banner: %v", err)
	}
	if got != "// cftypes 1" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := engine.Render(IndexTemplate, nil); err == nil {
		t.Fatal("expected error for template outside the supplied fs")
	}
}

func TestRender_ConcurrentUse(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Render(TypeGuardTemplate, map[string]any{
				"name": "isTypeA", "param": "Entry<EntrySkeletonType>", "entry": "TypeA", "id": "'a'",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent render: %v", err)
		}
	}
}
