package adapter

import "errors"

var (
	// ErrTransport matches every failure to get a usable response: network
	// errors, timeouts, non-2xx statuses and undecodable bodies.
	ErrTransport = errors.New("sync transport failed")

	ErrBadRequest          = errors.New("server rejected the request as malformed")
	ErrUnprocessable       = errors.New("server could not process the request")
	ErrInternalServerError = errors.New("server internal error")

	// ErrDecodeResponse is returned when the response body is not a valid
	// sync response document.
	ErrDecodeResponse = errors.New("failed to decode sync response")
)
