package ai

import "errors"

var (
	// ErrEmptyResponse is returned when a model produces no choices.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrMalformedResponse is returned when a model response does not match
	// the JSON contract of the call that produced it.
	ErrMalformedResponse = errors.New("malformed model response")
)
