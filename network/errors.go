package network

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionFailed indicates the request never produced an HTTP response
	// (dial failure, reset, timeout, canceled context).
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrRequestFailed indicates the service answered with a non-2xx status.
	ErrRequestFailed = errors.New("network: request failed")

	// ErrInvalidResponse indicates the service returned a malformed or unexpected response.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrUnknownNetwork indicates the network name is not recognized.
	ErrUnknownNetwork = errors.New("network: unknown network")

	// ErrNoEndpoint indicates a known network has no configured base endpoint.
	ErrNoEndpoint = errors.New("network: no endpoint configured")
)

// RemoteServiceError is the single failure kind produced by a remote call.
//
// When the service answered with an error status, StatusCode and Payload carry
// the response. Otherwise Payload is empty and Err holds the transport or
// decoding failure.
type RemoteServiceError struct {
	Method     string
	URL        string
	StatusCode int
	Payload    []byte
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.HasPayload() {
		return fmt.Sprintf("network: %s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Payload)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("network: %s %s: HTTP %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("network: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// HasPayload reports whether the service supplied an error body.
func (e *RemoteServiceError) HasPayload() bool { return len(e.Payload) > 0 }

// AsRemoteServiceError normalizes err into a *RemoteServiceError for the given
// request. Errors that already are one are returned unchanged; anything else is
// treated as a transport failure.
func AsRemoteServiceError(method, url string, err error) *RemoteServiceError {
	if err == nil {
		return nil
	}
	var rse *RemoteServiceError
	if errors.As(err, &rse) {
		return rse
	}
	return &RemoteServiceError{
		Method: method,
		URL:    url,
		Err:    fmt.Errorf("%w: %w", ErrConnectionFailed, err),
	}
}

// InvalidResponse builds a RemoteServiceError for a response that arrived but
// could not be interpreted.
func InvalidResponse(method, url, what string, cause error) *RemoteServiceError {
	var err error
	if cause != nil {
		err = fmt.Errorf("%w: %s: %w", ErrInvalidResponse, what, cause)
	} else {
		err = fmt.Errorf("%w: %s", ErrInvalidResponse, what)
	}
	return &RemoteServiceError{Method: method, URL: url, Err: err}
}
