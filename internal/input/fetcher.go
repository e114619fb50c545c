package input

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

const DefaultBaseURL = "https://adventofcode.com"

// Fetcher downloads the raw input of one puzzle.
type Fetcher interface {
	Fetch(ctx context.Context, credential string, key puzzle.Key) ([]byte, error)
}

// userAgentRoundTripper sets the User-Agent header on every request.
type userAgentRoundTripper struct {
	wrapped   http.RoundTripper
	userAgent string
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", rt.userAgent)
	return rt.wrapped.RoundTrip(clone)
}

// HTTPFetcher issues a single GET per call to {BaseURL}/{year}/day/{day}/input.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher wraps base with a User-Agent transport. A zero timeout keeps
// the client default.
func NewHTTPFetcher(baseURL string, userAgent string, timeout time.Duration, base *http.Client) *HTTPFetcher {
	if base == nil {
		base = &http.Client{}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if userAgent != "" {
		transport = &userAgentRoundTripper{wrapped: transport, userAgent: userAgent}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Transport:     transport,
			CheckRedirect: base.CheckRedirect,
			Jar:           base.Jar,
			Timeout:       timeout,
		},
	}
}

func (f *HTTPFetcher) URL(key puzzle.Key) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, key.Year, key.Day)
}

func (f *HTTPFetcher) Fetch(ctx context.Context, credential string, key puzzle.Key) ([]byte, error) {
	url := f.URL(key)

	if err := validateCredential(credential); err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Cookie", "session="+credential)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", http.StatusText(resp.StatusCode))}
	}

	return body, nil
}

// validateCredential rejects values that cannot be sent as a cookie value.
func validateCredential(credential string) error {
	if credential == "" {
		return ErrMissingCredential
	}
	for i := 0; i < len(credential); i++ {
		c := credential[i]
		if c < 0x21 || c == 0x7f || c == ';' || c == '"' || c == ',' || c == '\\' {
			return fmt.Errorf("building request: invalid character at position %d in session credential", i)
		}
	}
	return nil
}
