package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no upstream is configured for a source.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a failed retrieval from an upstream source.
type FetchError struct {
	Source     string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "source fetch failed"
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// WrapFetchError tags err with the source unless it already carries fetch details.
func WrapFetchError(source string, err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := AsFetchError(err); ok {
		if fe.Source == "" {
			fe.Source = source
		}
		return err
	}
	return &FetchError{Source: source, Err: err}
}
