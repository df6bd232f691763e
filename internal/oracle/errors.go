package oracle

import "errors"

var (
	// ErrUnavailable indicates the generation server is unreachable.
	ErrUnavailable = errors.New("oracle server unavailable")

	// ErrMissingCredential indicates the server rejected the request for
	// lack of a valid API key.
	ErrMissingCredential = errors.New("oracle credential missing or rejected")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("oracle request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured shape. Schema mismatches are treated the same as
	// transport failures: the caller gets no partial result.
	ErrInvalidOutput = errors.New("invalid oracle output format")
)
