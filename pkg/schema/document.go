package schema

import "github.com/cockroachdb/errors"

// Document is an export payload paired with the Source it was read from.
// The payload is copied on the way in and on the way out, so a Document can
// be shared between goroutines.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument pairs raw with src. Both are required; an empty payload is
// reported against the source location.
func NewDocument(src Source, raw []byte) (Document, error) {
	switch {
	case src == nil:
		return Document{}, errors.New("schema: document needs a source")
	case len(raw) == 0:
		return Document{}, errors.Newf("schema: export %s has no content", src.Location())
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument is NewDocument for fixtures and panics on error.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

// Raw returns a copy of the export bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is the source location, or "" for the zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
