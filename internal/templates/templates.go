// Package templates renders the text fragments of generated modules that are
// plain text rather than declarations: the index barrel and type guard
// functions. Templates are pongo2 files embedded in the binary; output is
// never HTML escaped.
package templates

import (
	"embed"
	"io/fs"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/flosch/pongo2/v6"
)

// Names of the embedded templates.
const (
	IndexTemplate     = "index.ts.tpl"
	TypeGuardTemplate = "type_guard.ts.tpl"
)

//go:embed files/*.tpl
var embedded embed.FS

// Option configures an Engine.
type Option func(*config)

type config struct {
	files   fs.FS
	globals map[string]any
}

// WithFS loads templates from files instead of the embedded set. Names not
// present in files fail to render.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.files = files
		}
	}
}

// WithGlobalData makes data available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				cfg.globals[key] = value
			}
		}
	}
}

// Engine renders named and inline templates. Parsed named templates are
// cached; an Engine is safe for concurrent use.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// New builds an Engine over the embedded templates unless WithFS is given.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.files == nil {
		sub, err := fs.Sub(embedded, "files")
		if err != nil {
			return nil, errors.Wrap(err, "templates: open embedded files")
		}
		cfg.files = sub
	}

	set := pongo2.NewSet("cftypes", pongo2.NewFSLoader(cfg.files))
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}
	set.Globals.Update(pongo2.Context(cfg.globals))

	return &Engine{
		set:   set,
		cache: make(map[string]*pongo2.Template),
	}, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	engine, err := New()
	if err != nil {
		panic(err)
	}
	return engine
})

// Default returns the shared Engine over the embedded templates.
func Default() *Engine {
	return defaultEngine()
}

// Render executes the named template with data.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", errors.Wrapf(err, "templates: execute %s", name)
	}
	return out, nil
}

// RenderString executes content as a template with data. Autoescaping is
// turned off for the whole content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	tpl, err := e.set.FromString("{% autoescape off %}" + content + "{% endautoescape %}")
	if err != nil {
		return "", errors.Wrap(err, "templates: parse inline template")
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", errors.Wrap(err, "templates: execute inline template")
	}
	return out, nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "templates: load %s", name)
	}
	e.cache[name] = tpl
	return tpl, nil
}
