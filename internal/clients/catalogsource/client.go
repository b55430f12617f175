// Package catalogsource fetches the raw catalog document the index is
// built from. The document is loaded exactly once at startup; a fetch
// or parse failure is terminal and there is no retry or partial
// catalog.
package catalogsource

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/errors"
)

// Client loads the catalog document from its configured source
type Client interface {
	// Load fetches and normalizes the catalog document
	Load(ctx context.Context) (*catalog.Document, error)
}

// Config holds the source location: exactly one of URL or Path
type Config struct {
	// URL of the document over HTTP(S)
	URL string
	// Path of a local document file
	Path string
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures the config names exactly one source
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.URL == "" && c.Path == "" {
		return errors.InvalidArgument("either URL or Path is required")
	}
	if c.URL != "" && c.Path != "" {
		return errors.InvalidArgument("URL and Path are mutually exclusive")
	}
	return nil
}

type client struct {
	url        string
	path       string
	httpClient *http.Client
}

// New creates a catalog source client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		url:        cfg.URL,
		path:       cfg.Path,
		httpClient: httpClient,
	}, nil
}

func (c *client) Load(ctx context.Context) (*catalog.Document, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.ParseDocument(data)
}

func (c *client) fetch(ctx context.Context) ([]byte, error) {
	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read catalog document")
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch catalog document")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("catalog fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read catalog response")
	}
	return data, nil
}
