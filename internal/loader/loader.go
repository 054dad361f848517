// Package loader fetches the itinerary data file, parses it and stores the
// result in a page State. The loader is the only writer of a State.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
)

// DefaultSource is the data file fetched when no other source is configured.
const DefaultSource = "viatge.json"

var (
	// ErrFetch covers network and filesystem failures while retrieving the data.
	ErrFetch = errors.New("fetching itinerary data")
	// ErrStatus is returned for a non-2xx HTTP response.
	ErrStatus = errors.New("unexpected response status")
	// ErrParse is returned when the body is not valid JSON for a document.
	ErrParse = errors.New("parsing itinerary data")
	// ErrInvalidDocument is returned when the JSON lacks the trip wrapper or days.
	ErrInvalidDocument = errors.New("invalid itinerary document")
)

// Loader retrieves a single itinerary document from a file path or URL.
type Loader struct {
	source string
	fsys   fs.FS
	client *http.Client
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS reads non-URL sources from fsys instead of the working directory.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) { l.fsys = fsys }
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader for source. An empty source means DefaultSource.
func New(source string, opts ...Option) *Loader {
	if source == "" {
		source = DefaultSource
	}
	l := &Loader{
		source: source,
		client: http.DefaultClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured file path or URL.
func (l *Loader) Source() string { return l.source }

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool {
	return strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://")
}

// Fetch returns the raw bytes of the data resource.
func (l *Loader) Fetch(ctx context.Context) ([]byte, error) {
	if l.IsRemote() {
		return l.fetchHTTP(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	var (
		data []byte
		err  error
	)
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, l.source)
	} else {
		data, err = os.ReadFile(l.source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetch, err)
	}
	return data, nil
}

// Parse decodes and validates a document body.
func Parse(data []byte) (*itinerary.Trip, error) {
	var doc itinerary.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc.Trip, nil
}

// Load fetches, parses and stores the document into state. It never retries;
// a failed load leaves state empty for good.
func (l *Loader) Load(ctx context.Context, state *State) error {
	data, err := l.Fetch(ctx)
	if err != nil {
		return err
	}
	trip, err := Parse(data)
	if err != nil {
		return err
	}
	if err := state.store(trip); err != nil {
		return err
	}
	l.logger.Debug("itinerary fetched",
		zap.String("source", l.source),
		zap.Int("bytes", len(data)),
		zap.Int("days", len(trip.Days)),
		zap.String("snapshot", state.SnapshotID().String()))
	return nil
}

// Kind names the failure class of a load error for diagnostics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrInvalidDocument):
		return "invalid"
	case errors.Is(err, ErrAlreadyLoaded):
		return "already_loaded"
	default:
		return "unknown"
	}
}
