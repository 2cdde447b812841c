package generator

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	internalloader "github.com/goliatone/go-cftypes/internal/loader"
	"github.com/goliatone/go-cftypes/pkg/naming"
	"github.com/goliatone/go-cftypes/pkg/render"
	"github.com/goliatone/go-cftypes/pkg/schema"
	"github.com/goliatone/go-cftypes/pkg/tsfile"
)

const (
	fileExtension   = ".ts"
	indexFileName   = "index" + fileExtension
	defaultDebounce = 300 * time.Millisecond
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom export loader.
func WithLoader(loader schema.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithRenderer replaces the content type renderer. Docs, type guard and render
// options are ignored when a renderer is supplied.
func WithRenderer(renderer render.Renderer) Option {
	return func(g *Generator) {
		g.renderer = renderer
	}
}

// WithRenderOptions adds options to the default content type renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(g *Generator) {
		g.renderOptions = append(g.renderOptions, opts...)
	}
}

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithConcurrency bounds how many content types render at once. Values below
// one fall back to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = n
	}
}

// WithTypeGuards emits an isTypeX guard function per content type.
func WithTypeGuards(enabled bool) Option {
	return func(g *Generator) {
		g.typeGuards = enabled
	}
}

// WithDocs emits JSDoc for every declaration.
func WithDocs(enabled bool) Option {
	return func(g *Generator) {
		g.docs = enabled
	}
}

// WithIndex adds an index.ts barrel re-exporting every module.
func WithIndex(enabled bool) Option {
	return func(g *Generator) {
		g.index = enabled
	}
}

// WithIndexTemplate replaces the index barrel template. The template sees
// modules, a list with id, name, fields, skeleton, guard and path per content
// type, and guards, true when type guards are emitted. It implies WithIndex.
func WithIndexTemplate(content string) Option {
	return func(g *Generator) {
		if strings.TrimSpace(content) == "" {
			return
		}
		g.indexTemplate = content
		g.index = true
	}
}

// WithHeader prepends header to every generated file.
func WithHeader(header string) Option {
	return func(g *Generator) {
		g.header = strings.TrimRight(header, "\n")
	}
}

// WithDebounce sets how long Watch waits for the export file to settle.
func WithDebounce(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.debounce = d
		}
	}
}

// Generator coordinates loading, decoding and rendering. Missing dependencies
// are initialised with the built-in implementations.
type Generator struct {
	loader        schema.Loader
	renderer      render.Renderer
	renderOptions []render.Option
	logger        *zap.Logger
	concurrency   int
	typeGuards    bool
	docs          bool
	index         bool
	indexTemplate string
	header        string
	debounce      time.Duration
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		logger:   zap.NewNop(),
		debounce: defaultDebounce,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	if g.loader == nil {
		g.loader = internalloader.New(schema.NewLoaderOptions())
	}
	if g.concurrency < 1 {
		g.concurrency = runtime.GOMAXPROCS(0)
	}
	if g.renderer == nil {
		opts := make([]render.Option, 0, len(g.renderOptions)+2)
		if g.docs {
			opts = append(opts, render.WithDocRenderer(render.NewDocRenderer()))
		}
		if g.typeGuards {
			opts = append(opts, render.WithTypeGuard(render.DefaultRenderTypeGuard))
		}
		opts = append(opts, g.renderOptions...)
		g.renderer = render.NewContentTypeRenderer(opts...)
	}
	return g
}

// Request describes the export to generate from. Exactly one of Source,
// Document or ContentTypes is consulted, in reverse order of preference.
type Request struct {
	// Source identifies where the export lives. Optional when Document or
	// ContentTypes is supplied.
	Source schema.Source

	// Document bypasses the loader for callers holding the raw export.
	Document *schema.Document

	// ContentTypes bypasses decoding.
	ContentTypes []schema.ContentType

	// Include limits generation to the given content type ids.
	Include []string
}

// File is one generated module.
type File struct {
	Name          string
	ContentTypeID string
	Content       []byte
}

// Result holds the generated modules sorted by file name.
type Result struct {
	Files        []File
	ContentTypes []schema.ContentType
}

// File returns the generated file called name.
func (r Result) File(name string) (File, bool) {
	for _, file := range r.Files {
		if file.Name == name {
			return file, true
		}
	}
	return File{}, false
}

// Names returns the generated file names.
func (r Result) Names() []string {
	names := make([]string, len(r.Files))
	for idx, file := range r.Files {
		names[idx] = file.Name
	}
	return names
}

// Generate renders every selected content type into its own module. Each
// content type is rendered with a fresh context; a render that panics aborts
// the whole run with an error naming the content type.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	types, err := g.resolveContentTypes(ctx, req)
	if err != nil {
		return Result{}, err
	}
	types, err = schema.Filter(types, req.Include)
	if err != nil {
		return Result{}, errors.Wrap(err, "generator: filter content types")
	}
	if err := checkModuleNames(types); err != nil {
		return Result{}, err
	}

	files := make([]File, len(types))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.concurrency)
	for idx, ct := range types {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			file, err := g.renderContentType(ct)
			if err != nil {
				return err
			}
			files[idx] = file
			g.logger.Debug("rendered content type",
				zap.String("content_type", ct.ID()),
				zap.String("file", file.Name),
			)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	if g.index && len(types) > 0 {
		index, err := g.indexFile(types)
		if err != nil {
			return Result{}, err
		}
		files = append(files, index)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	g.logger.Info("generated content types",
		zap.Int("content_types", len(types)),
		zap.Int("files", len(files)),
	)
	return Result{Files: files, ContentTypes: types}, nil
}

func (g *Generator) resolveContentTypes(ctx context.Context, req Request) ([]schema.ContentType, error) {
	if req.ContentTypes != nil {
		out := append([]schema.ContentType(nil), req.ContentTypes...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
		return out, nil
	}

	var doc schema.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := g.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, errors.Wrap(err, "generator: load export")
		}
		doc = loaded
	default:
		return nil, errors.New("generator: source, document or content types are required")
	}

	types, err := schema.Decode(doc)
	if err != nil {
		return nil, errors.Wrap(err, "generator: decode export")
	}
	g.logger.Debug("decoded export",
		zap.String("location", doc.Location()),
		zap.Int("content_types", len(types)),
	)
	return types, nil
}

// checkModuleNames rejects content types whose ids derive the same module
// name, since their files and index exports would collide.
func checkModuleNames(types []schema.ContentType) error {
	seen := make(map[string]string, len(types))
	for _, ct := range types {
		module := naming.ModuleName(ct.ID())
		if other, ok := seen[module]; ok {
			return errors.WithHint(
				errors.Newf("generator: content types %q and %q both map to module %s", other, ct.ID(), module),
				"rename one of the content types or leave one out of Include",
			)
		}
		seen[module] = ct.ID()
	}
	return nil
}

func (g *Generator) renderContentType(ct schema.ContentType) (file File, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			cause, ok := recovered.(error)
			if !ok {
				cause = errors.AssertionFailedf("%v", recovered)
			}
			err = errors.Wrapf(cause, "generator: render content type %q", ct.ID())
		}
	}()

	name := naming.ModuleName(ct.ID()) + fileExtension
	src := tsfile.NewSourceFile(name)
	g.renderer.Render(ct, src)

	return File{
		Name:          name,
		ContentTypeID: ct.ID(),
		Content:       []byte(g.withHeader(src.FullText())),
	}, nil
}

func (g *Generator) withHeader(content string) string {
	if g.header == "" {
		return content
	}
	return fmt.Sprintf("%s\n\n%s", g.header, content)
}
