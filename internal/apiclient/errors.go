package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed covers transport errors and non 2xx answers.
	ErrRequestFailed = errors.New("request failed")
	// ErrUnexpectedResponseShape is returned when the body is not the JSON the endpoint promises.
	ErrUnexpectedResponseShape = errors.New("unexpected response shape")
	// ErrNotFound is returned when the movie endpoint answers 404.
	ErrNotFound = errors.New("not found")
)

// StatusError reports a non 2xx HTTP status. It matches ErrRequestFailed, and
// ErrNotFound for a 404.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d from %s", ErrRequestFailed, e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
