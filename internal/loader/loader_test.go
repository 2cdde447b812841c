package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

const payload = `{"contentTypes": [{"sys": {"id": "post"}, "name": "Post", "fields": []}]}`

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(schema.NewLoaderOptions())
	doc, err := l.Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{
		"schemas/export.json": {Data: []byte(payload)},
	}
	l := New(schema.NewLoaderOptions(schema.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schema.SourceFromFS("schemas/export.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "schemas/export.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := New(schema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), schema.SourceFromURL("https://example.com/export.json")); err == nil {
		t.Fatal("expected http loading to be disabled")
	}
}

func TestLoad_HTTPSendsHeaders(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	l := New(schema.NewLoaderOptions(
		schema.WithHTTPClient(server.Client()),
		schema.WithBearerToken("secret"),
	))
	doc, err := l.Load(context.Background(), schema.SourceFromURL(server.URL+"/content_types"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
	types, err := schema.Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(types) != 1 || types[0].ID() != "post" {
		t.Fatalf("unexpected content types %+v", types)
	}
}

func TestLoad_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	l := New(schema.NewLoaderOptions(schema.WithHTTPClient(server.Client())))
	if _, err := l.Load(context.Background(), schema.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected non-2xx status to fail")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(schema.NewLoaderOptions())
	if _, err := l.Load(ctx, schema.SourceFromFile("does-not-matter.json")); err == nil {
		t.Fatal("expected cancelled context to fail")
	}
}
