package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/okc-dev/okc/internal/config"
	"github.com/okc-dev/okc/internal/httputil"
	"github.com/okc-dev/okc/internal/log"
)

const (
	// The full manifest is around 300KB today.
	maxManifestSize = 16 * 1024 * 1024
	// A detail document carries libraries and arguments; a few tens of KB.
	maxDetailSize = 4 * 1024 * 1024
)

// Fetcher downloads the upstream manifest and per-version detail documents.
// Requests are issued one at a time; a Fetcher holds no per-request state
// beyond its http.Client.
type Fetcher struct {
	httpClient  *http.Client
	manifestURL string
	logger      log.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient injects the HTTP client (tests point it at httptest servers).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithManifestURL overrides the upstream manifest URL.
func WithManifestURL(u string) Option {
	return func(f *Fetcher) {
		f.manifestURL = u
	}
}

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(l log.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a Fetcher using the hardened client and the configured manifest URL.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		manifestURL: config.GetManifestURL(),
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.httpClient == nil {
		f.httpClient = httputil.NewSecureClient(httputil.ClientOptions{
			Timeout: config.GetAPITimeout(),
		})
	}
	return f
}

// FetchManifest downloads and decodes the upstream manifest.
func (f *Fetcher) FetchManifest(ctx context.Context) (*Upstream, error) {
	f.logger.Debug("fetching version manifest", "url", f.manifestURL)

	var doc Upstream
	if err := f.getJSON(ctx, "fetch manifest", f.manifestURL, maxManifestSize, &doc); err != nil {
		return nil, err
	}
	if doc.Latest.Release == "" || doc.Latest.Snapshot == "" {
		return nil, &Error{
			Type:    ErrTypeValidation,
			Op:      "fetch manifest",
			URL:     f.manifestURL,
			Message: "manifest has no latest release or snapshot pointer",
		}
	}

	f.logger.Debug("fetched version manifest", "versions", len(doc.Versions))
	return &doc, nil
}

// FetchServerURL downloads v's detail document and returns its server jar URL.
// A version without a server download is a parse failure.
func (f *Fetcher) FetchServerURL(ctx context.Context, v UpstreamVersion) (string, error) {
	f.logger.Debug("fetching server url", "id", v.ID)

	var doc detailDocument
	if err := f.getJSON(ctx, "fetch detail", v.URL, maxDetailSize, &doc); err != nil {
		return "", err
	}
	if doc.Downloads.Server == nil || doc.Downloads.Server.URL == "" {
		return "", &Error{
			Type:    ErrTypeParsing,
			Op:      "fetch detail",
			URL:     v.URL,
			Message: fmt.Sprintf("version %s has no server download", v.ID),
		}
	}

	return doc.Downloads.Server.URL, nil
}

// Acquire fetches the manifest, filters it and enriches every retained
// entry. Detail documents are fetched sequentially in manifest order; the
// first failure aborts the whole acquisition.
func (f *Fetcher) Acquire(ctx context.Context) (*Source, error) {
	up, err := f.FetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	kept := Filter(up.Versions)
	f.logger.Info("enriching versions", "kept", len(kept), "dropped", len(up.Versions)-len(kept))

	src := &Source{
		Latest:   up.Latest,
		Versions: make([]Entry, 0, len(kept)),
	}
	for _, v := range kept {
		serverURL, err := f.FetchServerURL(ctx, v)
		if err != nil {
			return nil, err
		}
		src.Versions = append(src.Versions, newEntry(v, serverURL))
	}

	return src, nil
}

func (f *Fetcher) getJSON(ctx context.Context, op, rawURL string, limit int64, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Op: op, URL: rawURL, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return wrapNetworkError(err, op, rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			Type:    statusErrorType(resp.StatusCode),
			Op:      op,
			URL:     rawURL,
			Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, limit)).Decode(v); err != nil {
		return &Error{Type: ErrTypeParsing, Op: op, URL: rawURL, Message: "failed to decode response", Err: err}
	}
	return nil
}

func statusErrorType(code int) ErrorType {
	switch code {
	case http.StatusNotFound:
		return ErrTypeNotFound
	case http.StatusTooManyRequests:
		return ErrTypeRateLimit
	default:
		return ErrTypeNetwork
	}
}
