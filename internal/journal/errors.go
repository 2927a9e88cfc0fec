package journal

import "fmt"

// TransportError means the week journal could not be reached or
// answered with a non-OK status. Fatal for the initial fetch of a
// resolution, soft during the forward search.
type TransportError struct {
	Week string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("week %s: transport: %s", e.Week, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the week payload did not decode into the expected
// shape. Same fatality rule as TransportError.
type ParseError struct {
	Week string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("week %s: parse: %s", e.Week, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
