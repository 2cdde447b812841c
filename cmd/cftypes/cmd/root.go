package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-cftypes/internal/config"
	internalloader "github.com/goliatone/go-cftypes/internal/loader"
	"github.com/goliatone/go-cftypes/internal/logging"
	"github.com/goliatone/go-cftypes/internal/prompt"
	"github.com/goliatone/go-cftypes/pkg/generator"
	"github.com/goliatone/go-cftypes/pkg/schema"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"source":      config.KeySource,
	"out":         config.KeyOut,
	"include":     config.KeyInclude,
	"token":       config.KeyToken,
	"header":      config.KeyHeader,
	"jsdoc":       config.KeyJSDoc,
	"typeguard":   config.KeyTypeGuard,
	"index":       config.KeyIndex,
	"preserve":    config.KeyPreserve,
	"interactive": config.KeyInteractive,
	"concurrency": config.KeyConcurrency,
	"timeout":     config.KeyTimeout,
	"debounce":    config.KeyDebounce,
	"json-log":    config.KeyJSONLog,
	"verbose":     config.KeyVerbose,
}

// app carries the state shared by every subcommand.
type app struct {
	v          *viper.Viper
	configPath string

	// newDriver builds the interactive prompt driver.
	newDriver func() prompt.Driver
}

// NewRootCmd builds the cftypes command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newApp() *app {
	return &app{
		v:         config.NewViper(),
		newDriver: prompt.NewSurveyDriver,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cftypes",
		Short: "Generate TypeScript types from content type definitions",
		Long: `Generate TypeScript declarations from a content model export.

For every content type cftypes writes a module with three declarations:
a fields interface (TypeXFields), a skeleton interface (TypeXSkeleton) and
the entry alias (TypeX). Links to other content types import their skeletons.

Configuration is read from flags, CFTYPES_* environment variables and
cftypes.yaml, in that order of precedence.

Examples:
  cftypes --source export.json                  # Print modules to stdout
  cftypes --source export.json --out src/types  # Write one file per content type
  cftypes --source https://api.example.com/content_types --token $TOKEN --out types
  cftypes check --out src/types                 # Fail when files are out of date
  cftypes watch --out src/types                 # Regenerate on export changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: ./cftypes.yaml when present)")
	flags.StringP("source", "s", "", "Export file path or URL")
	flags.StringP("out", "o", "", "Output directory (default: stdout)")
	flags.StringSlice("include", nil, "Content type ids to generate (default: all)")
	flags.String("token", "", "Bearer token for remote exports")
	flags.String("header", config.DefaultHeader, "Banner prepended to every file")
	flags.Bool("jsdoc", false, "Emit JSDoc for declarations")
	flags.Bool("typeguard", false, "Emit isTypeX guard functions")
	flags.Bool("index", false, "Emit an index.ts barrel")
	flags.Bool("preserve", false, "Keep .ts files in the output directory that are no longer generated")
	flags.BoolP("interactive", "i", false, "Pick content types interactively")
	flags.Int("concurrency", 0, "Content types rendered in parallel (default: GOMAXPROCS)")
	flags.Duration("timeout", 0, "Timeout for remote exports")
	flags.Duration("debounce", 0, "Quiet period before watch regenerates")
	flags.Bool("json-log", false, "Log as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	for name, key := range flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newCheckCmd(a), newWatchCmd(a))
	return root
}

// session is a loaded configuration with the collaborators built from it.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	loader schema.Loader
	gen    *generator.Generator
	source schema.Source
}

func (a *app) session() (*session, error) {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.JSONLog, cfg.Verbose)
	if err != nil {
		return nil, errors.Wrap(err, "cftypes: create logger")
	}
	if strings.TrimSpace(cfg.Source) == "" {
		return nil, errors.WithHint(
			errors.New("cftypes: source is required"),
			"pass --source, set CFTYPES_SOURCE or add source to cftypes.yaml",
		)
	}
	source, err := parseSource(cfg.Source)
	if err != nil {
		return nil, err
	}

	loader := internalloader.New(schema.NewLoaderOptions(
		schema.WithHTTPFallback(cfg.Timeout),
		schema.WithBearerToken(cfg.Token),
	))
	gen := generator.New(
		generator.WithLoader(loader),
		generator.WithLogger(logger),
		generator.WithConcurrency(cfg.Concurrency),
		generator.WithDocs(cfg.JSDoc),
		generator.WithTypeGuards(cfg.TypeGuard),
		generator.WithIndex(cfg.Index),
		generator.WithHeader(cfg.Header),
		generator.WithDebounce(cfg.Debounce),
	)

	return &session{
		cfg:    cfg,
		logger: logger,
		loader: loader,
		gen:    gen,
		source: source,
	}, nil
}

// generate builds the request from the configuration, asking for the content
// types first when running interactively.
func (a *app) generate(ctx context.Context, s *session) (generator.Result, error) {
	req := generator.Request{Source: s.source, Include: s.cfg.Include}
	if s.cfg.Interactive {
		doc, err := s.loader.Load(ctx, s.source)
		if err != nil {
			return generator.Result{}, errors.Wrap(err, "cftypes: load export")
		}
		types, err := schema.Decode(doc)
		if err != nil {
			return generator.Result{}, errors.Wrap(err, "cftypes: decode export")
		}
		if len(req.Include) > 0 {
			if types, err = schema.Filter(types, req.Include); err != nil {
				return generator.Result{}, err
			}
		}
		ids, err := prompt.SelectContentTypes(ctx, a.newDriver(), types)
		if err != nil {
			return generator.Result{}, err
		}
		req = generator.Request{ContentTypes: types, Include: ids}
	}
	return s.gen.Generate(ctx, req)
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := a.session()
	if err != nil {
		return err
	}
	defer s.logger.Sync() //nolint:errcheck

	result, err := a.generate(cmd.Context(), s)
	if err != nil {
		return err
	}

	if s.cfg.Out == "" {
		return printResult(cmd.OutOrStdout(), result)
	}

	report, err := s.gen.Write(cmd.Context(), s.cfg.Out, result, generator.WriteOptions{Preserve: s.cfg.Preserve})
	if err != nil {
		return err
	}
	printWriteReport(cmd.OutOrStdout(), s.cfg.Out, report)
	return nil
}

func printResult(w io.Writer, result generator.Result) error {
	for idx, file := range result.Files {
		if idx > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "// %s\n%s", file.Name, file.Content); err != nil {
			return err
		}
	}
	return nil
}

func printWriteReport(w io.Writer, dir string, report generator.WriteReport) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s wrote %d files to %s\n", green("✓"), len(report.Written), dir)
	for _, name := range report.Removed {
		fmt.Fprintf(w, "  %s %s\n", yellow("removed"), name)
	}
}

func parseSource(raw string) (schema.Source, error) {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.ParseURLSource(path)
	}
	return schema.SourceFromFile(path), nil
}
