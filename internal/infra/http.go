package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultClient is shared across all DoGet calls. Per-call deadlines come
// from the request context, so the client itself carries no timeout.
var defaultClient = &http.Client{}

const userAgent = "portlink/1.0 (+https://github.com/opendunl/portlink)"

// DoGet performs an HTTP GET with the given headers and returns the
// response body, status code, and error. The caller must close the body.
// Non-2xx responses are returned as errors with the body drained.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := defaultClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, resp.StatusCode, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, resp.StatusCode, nil
}

// WithTimeout derives a context with the given timeout in seconds,
// falling back to 15s for non-positive values.
func WithTimeout(ctx context.Context, seconds int) (context.Context, context.CancelFunc) {
	if seconds <= 0 {
		seconds = 15
	}
	return context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
}
