package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cftypes/internal/prompt"
)

// exportPath locates the shared fixture from this file's location so tests
// that change the working directory still find it.
func exportPath(t *testing.T) string {
	t.Helper()

	_, here, _, ok := runtime.Caller(0)
	require.True(t, ok, "unable to resolve caller path")
	return filepath.Join(filepath.Dir(here), "..", "..", "..", "pkg", "generator", "testdata", "blog.json")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_PrintsToStdout(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "--source", exportPath(t), "--include", "author", "--header", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// TypeAuthor.ts\nimport type { Asset, Entry, EntryFields } from \"contentful\";\n"), out)
	assert.NotContains(t, out, "TypeBlog__post")
}

func TestExportPath_IndependentOfWorkingDirectory(t *testing.T) {
	before := exportPath(t)
	t.Chdir(t.TempDir())

	after := exportPath(t)
	assert.Equal(t, before, after)
	assert.FileExists(t, after)
}

func TestRoot_RequiresSource(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "--source")
}

func TestRoot_WriteThenCheck(t *testing.T) {
	t.Chdir(t.TempDir())
	out := filepath.Join(t.TempDir(), "types")

	_, err := execute(t, "--source", exportPath(t), "--out", out, "--index")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "TypeAuthor.ts"))
	assert.FileExists(t, filepath.Join(out, "index.ts"))

	content, err := os.ReadFile(filepath.Join(out, "TypeAuthor.ts"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "// This file was generated by cftypes. Do not edit.\n\n"))

	report, err := execute(t, "check", "--source", exportPath(t), "--out", out, "--index")
	require.NoError(t, err)
	assert.Contains(t, report, "up to date")

	require.NoError(t, os.Remove(filepath.Join(out, "index.ts")))
	report, err = execute(t, "check", "--source", exportPath(t), "--out", out, "--index")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))
	assert.Contains(t, report, "index.ts")
}

func TestRoot_CheckHonoursPreserve(t *testing.T) {
	t.Chdir(t.TempDir())
	out := filepath.Join(t.TempDir(), "types")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "TypeLegacy.ts"), []byte("export {};\n"), 0o644))

	_, err := execute(t, "--source", exportPath(t), "--out", out, "--preserve")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "TypeLegacy.ts"))

	report, err := execute(t, "check", "--source", exportPath(t), "--out", out, "--preserve")
	require.NoError(t, err)
	assert.Contains(t, report, "up to date")

	report, err = execute(t, "check", "--source", exportPath(t), "--out", out)
	require.Error(t, err)
	assert.Contains(t, report, "TypeLegacy.ts")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "types")
	cfg := "source: " + exportPath(t) + "\nout: " + out + "\ninclude: [blog-post]\ntypeguard: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cftypes.yaml"), []byte(cfg), 0o644))
	t.Chdir(dir)

	_, err := execute(t)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(out, "TypeBlog__post.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "export function isTypeBlog__post(")
	assert.NoFileExists(t, filepath.Join(out, "TypeAuthor.ts"))
}

type stubDriver struct {
	pick []int
}

func (s stubDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return s.pick, nil
}

func (s stubDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func TestRoot_Interactive(t *testing.T) {
	t.Chdir(t.TempDir())

	a := newApp()
	a.newDriver = func() prompt.Driver { return stubDriver{pick: []int{1}} }

	root := newRootCmd(a)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--source", exportPath(t), "--interactive", "--header", ""})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.True(t, strings.HasPrefix(buf.String(), "// TypeBlog__post.ts\n"), buf.String())
	assert.NotContains(t, buf.String(), "// TypeAuthor.ts")
}

func TestParseSource(t *testing.T) {
	src, err := parseSource("https://example.com/export.json")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/export.json", src.Location())

	src, err = parseSource(" export.json ")
	require.NoError(t, err)
	assert.Equal(t, "export.json", src.Location())
}
