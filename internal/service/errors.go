package service

import (
	"errors"
	"fmt"
)

// ErrCreatorIDRequired is returned when the catalog route is called without a creatorId.
var ErrCreatorIDRequired = errors.New("creatorId is required")

// UpstreamError describes a failed outbound call.
// StatusCode is 0 when no response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
	URL        string
	Err        error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func statusError(url string, status int, body []byte) *UpstreamError {
	return &UpstreamError{
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
		Body:       body,
		URL:        url,
	}
}

func transportError(url string, err error) *UpstreamError {
	return &UpstreamError{
		Message: err.Error(),
		URL:     url,
		Err:     err,
	}
}
