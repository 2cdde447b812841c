package generator

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// WriteOptions tunes Write.
type WriteOptions struct {
	// Preserve keeps .ts files in the output directory that the result does
	// not contain.
	Preserve bool
}

// WriteReport lists what Write changed on disk.
type WriteReport struct {
	Written []string
	Removed []string
}

// Write stores every file of result under dir, creating it when needed. Stale
// modules from earlier runs are removed unless opts.Preserve is set.
func (g *Generator) Write(ctx context.Context, dir string, result Result, opts WriteOptions) (WriteReport, error) {
	var report WriteReport
	if dir == "" {
		return report, errors.New("generator: output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, errors.Wrapf(err, "generator: create %s", dir)
	}

	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return report, errors.Wrapf(err, "generator: write %s", path)
		}
		report.Written = append(report.Written, file.Name)
	}

	if !opts.Preserve {
		stale, err := staleFiles(dir, result)
		if err != nil {
			return report, err
		}
		for _, name := range stale {
			path := filepath.Join(dir, name)
			if err := os.Remove(path); err != nil {
				return report, errors.Wrapf(err, "generator: remove stale %s", path)
			}
			report.Removed = append(report.Removed, name)
		}
	}

	g.logger.Info("wrote generated files",
		zap.String("dir", dir),
		zap.Int("written", len(report.Written)),
		zap.Strings("removed", report.Removed),
	)
	return report, nil
}

// staleFiles lists the .ts files in dir the result does not produce. A
// missing directory has no stale files.
func staleFiles(dir string, result Result) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "generator: read %s", dir)
	}

	wanted := make(map[string]struct{}, len(result.Files))
	for _, file := range result.Files {
		wanted[file.Name] = struct{}{}
	}

	var stale []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		if _, ok := wanted[entry.Name()]; !ok {
			stale = append(stale, entry.Name())
		}
	}
	sort.Strings(stale)
	return stale, nil
}
