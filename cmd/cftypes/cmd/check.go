package cmd

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cftypes/pkg/generator"
)

// ErrOutOfDate is returned by check when the output directory has drifted.
var ErrOutOfDate = errors.New("generated types are out of date")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check if generated types are up to date",
		Long: `Generate in memory and compare with the files in the output directory.

Nothing is written. Missing, changed and stale modules are reported and the
command fails when any are found, which makes it suitable for CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			if s.cfg.Out == "" {
				return errors.New("cftypes: check requires --out")
			}

			result, err := s.gen.Generate(cmd.Context(), generatorRequest(s))
			if err != nil {
				return err
			}
			report, err := s.gen.Check(s.cfg.Out, result, generator.WriteOptions{Preserve: s.cfg.Preserve})
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			if !report.UpToDate() {
				return errors.WithHint(ErrOutOfDate, "run cftypes with the same configuration to update them")
			}
			return nil
		},
	}
}

func generatorRequest(s *session) generator.Request {
	return generator.Request{Source: s.source, Include: s.cfg.Include}
}

func printReport(w io.Writer, report generator.Report) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	if report.UpToDate() {
		green.Fprintln(w, "✓ Types are up to date")
		return
	}

	red.Fprintln(w, "✗ Types are out of date.")
	for _, name := range report.Missing {
		fmt.Fprintf(w, "  %s %s\n", yellow.Sprint("missing"), name)
	}
	for _, name := range report.Stale {
		fmt.Fprintf(w, "  %s %s\n", yellow.Sprint("stale"), name)
	}
	for _, diff := range report.Changed {
		fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint(diff.Name))
		for _, line := range diff.Lines {
			switch line.Op {
			case generator.DiffInsert:
				green.Fprintf(w, "+ %s\n", line.Text)
			case generator.DiffDelete:
				red.Fprintf(w, "- %s\n", line.Text)
			}
		}
	}
}
