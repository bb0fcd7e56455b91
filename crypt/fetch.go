package crypt

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxKeySize bounds the size of a fetched keyring.
const maxKeySize = 1 << 20

type fetchConfig struct {
	client    *http.Client
	userAgent string
}

// FetchOption configures FetchKey.
type FetchOption func(*fetchConfig)

// WithHTTPClient sets the HTTP client used to fetch keys.
// If not set, http.DefaultClient is used.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.client = c
	}
}

// WithUserAgent sets the User-Agent header for key requests.
func WithUserAgent(ua string) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.userAgent = ua
	}
}

// FetchKey downloads and parses a public key from url.
//
// The request bypasses caches so a rotated key is picked up immediately.
// Non-2xx responses are returned as *FetchError.
func FetchKey(ctx context.Context, url string, opts ...FetchOption) (*Key, error) {
	cfg := fetchConfig{client: http.DefaultClient}
	for _, opt := range opts {
		opt(&cfg)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("crypt: fetch public key: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	if cfg.userAgent != "" {
		req.Header.Set("User-Agent", cfg.userAgent)
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crypt: fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}
	return ReadKey(io.LimitReader(resp.Body, maxKeySize))
}
