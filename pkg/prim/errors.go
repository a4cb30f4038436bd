package prim

import (
	"errors"
	"fmt"
)

var ErrMissingCredential = errors.New("missing PRIM API key (set IDFM_PRIM_API_KEY)")

// ErrGateway matches every *GatewayError through errors.Is
var ErrGateway = errors.New("prim gateway error")

// GatewayError is returned when the API could not be reached, answered with a
// non-success status, or sent a document that could not be decoded
type GatewayError struct {
	Path       string
	StatusCode int
	Body       string

	Err error
}

func (e *GatewayError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("prim %s: status %d: %s", e.Path, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("prim %s: unexpected status %d", e.Path, e.StatusCode)
	default:
		return fmt.Sprintf("prim %s: %s", e.Path, e.Err)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}
