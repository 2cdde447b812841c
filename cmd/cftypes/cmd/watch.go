package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cftypes/pkg/generator"
	"github.com/goliatone/go-cftypes/pkg/schema"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the export file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			if s.cfg.Out == "" {
				return errors.New("cftypes: watch requires --out")
			}
			if s.source.Kind() != schema.SourceKindFile {
				return errors.Newf("cftypes: watch needs a local export file, got %s", s.source.Location())
			}

			regenerate := func(ctx context.Context) error {
				result, err := s.gen.Generate(ctx, generatorRequest(s))
				if err != nil {
					return err
				}
				report, err := s.gen.Write(ctx, s.cfg.Out, result, generator.WriteOptions{Preserve: s.cfg.Preserve})
				if err != nil {
					return err
				}
				printWriteReport(cmd.OutOrStdout(), s.cfg.Out, report)
				return nil
			}

			if err := regenerate(cmd.Context()); err != nil {
				return err
			}
			return s.gen.Watch(cmd.Context(), s.source.Location(), regenerate)
		},
	}
}
