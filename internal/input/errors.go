package input

import (
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

// ErrMissingCredential is returned when a remote fetch is needed but no
// session credential was given.
var ErrMissingCredential = errors.New("missing session credential")

// StorageError reports a cache directory or cache entry that could not be
// read or written.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NetworkError reports a remote request that could not be built, failed to
// connect, or returned a non-success status. StatusCode is 0 when no response
// was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid text.
type DecodeError struct {
	Key puzzle.Key
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding input %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
