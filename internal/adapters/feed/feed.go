// Package feed loads the campaign payload from a file or URL and falls
// back to a built-in record set when neither source yields one.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/pkg/logger"
	"github.com/okian/centum/pkg/metrics"
)

// Source labels reported alongside a loaded payload.
const (
	SourceFile     = "file"
	SourceURL      = "url"
	SourceFallback = "fallback"
)

const defaultTimeout = 5 * time.Second

// maxBody caps a remote payload read.
const maxBody = 16 << 20

// Loader fetches the raw payload. Load never fails: a load problem is a
// diagnostic condition, not a blocking error, and resolves to the
// built-in fallback payload.
type Loader struct {
	url     string
	path    string
	timeout time.Duration
	client  *http.Client
	log     logger.Logger
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithURL sets the remote feed endpoint.
func WithURL(url string) Option {
	return func(l *Loader) {
		l.url = url
	}
}

// WithPath sets a local payload file, tried before the URL.
func WithPath(path string) Option {
	return func(l *Loader) {
		l.path = path
	}
}

// WithTimeout bounds one remote fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout: defaultTimeout,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Get()
	}
	return l
}

// Load resolves a payload: local file first, then URL, then the built-in
// fallback. Failures are logged and counted, never returned.
func (l *Loader) Load(ctx context.Context) (*model.Payload, string) {
	if l.path != "" {
		payload, err := l.loadFile()
		if err == nil {
			metrics.RecordFeedLoad(SourceFile, "success")
			return payload, SourceFile
		}
		metrics.RecordFeedLoad(SourceFile, "failure")
		l.log.Warn(ctx, "feed file load failed", logger.String("path", l.path), logger.Error(err))
	}

	if l.url != "" {
		payload, err := l.loadURL(ctx)
		if err == nil {
			metrics.RecordFeedLoad(SourceURL, "success")
			return payload, SourceURL
		}
		metrics.RecordFeedLoad(SourceURL, "failure")
		l.log.Warn(ctx, "feed fetch failed", logger.String("url", l.url), logger.Error(err))
	}

	metrics.RecordFeedFallback()
	l.log.Info(ctx, "using built-in fallback payload")
	return Fallback(), SourceFallback
}

func (l *Loader) loadFile() (*model.Payload, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	payload, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return payload, nil
}

func (l *Loader) loadURL(ctx context.Context) (*model.Payload, error) {
	reqCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	payload, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return payload, nil
}
