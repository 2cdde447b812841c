package schema

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// SourceKind tells a loader how to read a Source.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source names an export: a path on disk, a name inside an fs.FS, or an
// HTTP(S) endpoint such as the management API content_types listing.
type Source interface {
	Kind() SourceKind
	Location() string
}

// exportRef is the single Source implementation; the kind selects how
// Location is interpreted.
type exportRef struct {
	kind SourceKind
	ref  string
}

func (r exportRef) Kind() SourceKind { return r.kind }

func (r exportRef) Location() string { return r.ref }

// String renders the reference as kind:location for log fields.
func (r exportRef) String() string {
	return string(r.kind) + ":" + r.ref
}

// SourceFromFile references an export file on disk.
func SourceFromFile(file string) Source {
	return exportRef{kind: SourceKindFile, ref: filepath.Clean(file)}
}

// SourceFromFS references an export inside an fs.FS. Names use forward
// slashes as fs.FS requires.
func SourceFromFS(name string) Source {
	return exportRef{kind: SourceKindFS, ref: path.Clean(filepath.ToSlash(name))}
}

// ParseURLSource references an export served over HTTP or HTTPS.
func ParseURLSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("schema: export URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "schema: parse export URL %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.WithHint(
			errors.Newf("schema: export URL %q needs an http or https scheme and a host", raw),
			"use a file path for local exports",
		)
	}
	return exportRef{kind: SourceKindURL, ref: raw}, nil
}

// SourceFromURL is ParseURLSource for URLs known at compile time and panics
// on a malformed one.
func SourceFromURL(raw string) Source {
	src, err := ParseURLSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}
