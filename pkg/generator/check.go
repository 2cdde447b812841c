package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies a line of a FileDiff.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffLine is one line of a file comparison. Insert lines exist only in the
// generated output, delete lines only on disk.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// FileDiff describes how a file on disk differs from its generated content.
type FileDiff struct {
	Name  string
	Lines []DiffLine
}

// String renders the changed lines with -/+ prefixes.
func (d FileDiff) String() string {
	var sb strings.Builder
	for _, line := range d.Lines {
		switch line.Op {
		case DiffInsert:
			sb.WriteString("+ ")
		case DiffDelete:
			sb.WriteString("- ")
		default:
			continue
		}
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Report is the outcome of Check.
type Report struct {
	Missing []string
	Changed []FileDiff
	Stale   []string
}

// UpToDate reports whether the directory matches the result exactly.
func (r Report) UpToDate() bool {
	return len(r.Missing) == 0 && len(r.Changed) == 0 && len(r.Stale) == 0
}

// Check compares result with the files under dir without modifying them.
// opts mirrors the Write configuration: with Preserve set, extra .ts files
// are expected and not reported as stale.
func (g *Generator) Check(dir string, result Result, opts WriteOptions) (Report, error) {
	var report Report
	for _, file := range result.Files {
		path := filepath.Join(dir, file.Name)
		existing, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				report.Missing = append(report.Missing, file.Name)
				continue
			}
			return Report{}, errors.Wrapf(err, "generator: read %s", path)
		}
		if string(existing) == string(file.Content) {
			continue
		}
		report.Changed = append(report.Changed, FileDiff{
			Name:  file.Name,
			Lines: diffLines(string(existing), string(file.Content)),
		})
	}

	if opts.Preserve {
		return report, nil
	}
	stale, err := staleFiles(dir, result)
	if err != nil {
		return Report{}, err
	}
	report.Stale = stale
	return report, nil
}

func diffLines(from, to string) []DiffLine {
	dmp := diffmatchpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	var out []DiffLine
	for _, diff := range diffs {
		op := DiffEqual
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}
