// Package loader implements schema.Loader for files, fs.FS entries and HTTP
// endpoints (content model exports or the management API).
package loader

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-cftypes/pkg/schema"
)

// Loader delegates to file, fs.FS, or HTTP strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	headers   http.Header
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schema.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		headers:   options.Headers.Clone(),
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if !l.allowHTTP {
			return schema.Document{}, errors.WithHint(
				errors.New("loader: http support disabled"),
				"enable it with schema.WithHTTPFallback or schema.WithHTTPClient",
			)
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.headers)
	default:
		err = errors.Newf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, errors.Wrapf(err, "loader: load %s", src.Location())
	}

	return schema.NewDocument(src, data)
}
