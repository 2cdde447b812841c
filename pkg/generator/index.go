package generator

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/internal/templates"
	"github.com/goliatone/go-cftypes/pkg/naming"
	"github.com/goliatone/go-cftypes/pkg/schema"
)

// indexFile re-exports the declarations of every module, sorted by module
// name so the barrel is stable across runs.
func (g *Generator) indexFile(types []schema.ContentType) (File, error) {
	modules := make([]map[string]any, 0, len(types))
	for _, ct := range types {
		id := ct.ID()
		modules = append(modules, map[string]any{
			"id":       id,
			"name":     naming.ModuleName(id),
			"fields":   naming.ModuleFieldsName(id),
			"skeleton": naming.ModuleSkeletonName(id),
			"guard":    "is" + naming.ModuleName(id),
			"path":     naming.ModulePath(id),
		})
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i]["name"].(string) < modules[j]["name"].(string)
	})

	data := map[string]any{
		"modules": modules,
		"guards":  g.typeGuards,
	}
	var (
		content string
		err     error
	)
	if g.indexTemplate != "" {
		content, err = templates.Default().RenderString(g.indexTemplate, data)
	} else {
		content, err = templates.Default().Render(templates.IndexTemplate, data)
	}
	if err != nil {
		return File{}, errors.Wrap(err, "generator: render index")
	}

	content = strings.TrimRight(content, "\n") + "\n"
	return File{
		Name:    indexFileName,
		Content: []byte(g.withHeader(content)),
	}, nil
}
