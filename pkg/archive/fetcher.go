// Package archive retrieves raw markup of the archive listing page
package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html/charset"

	"github.com/umputun/arcwatch/pkg/domain"
)

// HTTPFetcher fetches archive pages via HTTP
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a new fetcher with given timeout and user agent
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the page and returns its body decoded to UTF-8.
// Any transport or status failure is reported as *domain.NetworkError.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", &domain.NetworkError{URL: pageURL, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	started := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.NetworkError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.NetworkError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	// decode legacy encodings, charset comes from Content-Type or <meta>
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &domain.NetworkError{URL: pageURL, Err: fmt.Errorf("detect charset: %w", err)}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &domain.NetworkError{URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}

	lgr.Printf("[DEBUG] fetched %s, %d bytes in %v", pageURL, len(data), time.Since(started))
	return string(data), nil
}
