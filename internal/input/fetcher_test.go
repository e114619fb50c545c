package input

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

func TestHTTPFetcher_Fetch_RequestShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/2022/day/7/input" {
			t.Errorf("path = %s", r.URL.Path)
		}
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc123" {
			t.Errorf("session cookie = %v, %v", cookie, err)
		}
		if r.Header.Get("User-Agent") != "aoc-runner-test" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte("$ cd /\n"))
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(ts.URL+"/", "aoc-runner-test", 0, &http.Client{})

	body, err := fetcher.Fetch(context.Background(), "abc123", puzzle.Key{Year: 2022, Day: 7})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if string(body) != "$ cd /\n" {
		t.Errorf("body = %q", body)
	}
}

func TestHTTPFetcher_Fetch_BadCredential(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(ts.URL, "", 0, nil)

	tests := []struct {
		name       string
		credential string
		missing    bool
	}{
		{name: "empty", credential: "", missing: true},
		{name: "newline", credential: "abc\ndef"},
		{name: "semicolon", credential: "abc;def"},
		{name: "space", credential: "abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fetcher.Fetch(context.Background(), tt.credential, puzzle.Key{Year: 2022, Day: 1})

			var netErr *NetworkError
			if !errors.As(err, &netErr) {
				t.Fatalf("expected NetworkError, got %v", err)
			}
			if tt.missing && !errors.Is(err, ErrMissingCredential) {
				t.Errorf("expected ErrMissingCredential, got %v", err)
			}
		})
	}

	if called {
		t.Error("no request should reach the server with a bad credential")
	}
}

func TestHTTPFetcher_Fetch_ConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	fetcher := NewHTTPFetcher(url, "", 0, nil)
	_, err := fetcher.Fetch(context.Background(), "cred", puzzle.Key{Year: 2022, Day: 1})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", netErr.StatusCode)
	}
}

func TestHTTPFetcher_URL(t *testing.T) {
	fetcher := NewHTTPFetcher("", "", 0, nil)
	want := "https://adventofcode.com/2022/day/3/input"
	if got := fetcher.URL(puzzle.Key{Year: 2022, Day: 3}); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
