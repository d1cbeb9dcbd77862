// Package pydown downloads and installs python-build-standalone releases
// from GitHub.
package pydown

import (
	"fmt"
	"net/http"
	"time"
)

// userAgent identifies the toolbox to the GitHub API.
const userAgent = "dukatools-pydown/1.0"

const (
	defaultTimeout  = 30 * time.Second
	defaultRetryMax = 2
)

// retryTransport adds bounded retry for replayable requests. Only GET and
// HEAD requests without a body are retried; RetryMax is the number of
// retries on top of the first attempt.
type retryTransport struct {
	base     http.RoundTripper
	retryMax int
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	canRetry := (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
	max := t.retryMax
	if !canRetry || max < 0 {
		max = 0
	}

	var lastErr error
	for attempt := 0; attempt <= max; attempt++ {
		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" {
			r.Header.Set("User-Agent", userAgent)
		}

		resp, err := t.base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if req.Context().Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// NewAPIClient returns the client used for GitHub API calls: bounded retry
// plus an overall timeout.
func NewAPIClient() *http.Client {
	return &http.Client{
		Transport: &retryTransport{base: http.DefaultTransport, retryMax: defaultRetryMax},
		Timeout:   defaultTimeout,
	}
}

// NewDownloadClient returns the client used for asset downloads. Same retry
// policy but no overall timeout: a large archive on a slow link is not an
// error.
func NewDownloadClient() *http.Client {
	return &http.Client{
		Transport: &retryTransport{base: http.DefaultTransport, retryMax: defaultRetryMax},
	}
}

// authorize sets the common headers on an API or download request.
func authorize(req *http.Request, token string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// httpError renders a non-2xx response as an error.
func httpError(resp *http.Response) error {
	return fmt.Errorf("GitHub API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
