package planner

import (
	"errors"
	"fmt"
)

var ErrUnresolvedPlace = errors.New("could not resolve place")
var ErrMissingFilter = errors.New("provide a line id or a filter")

type PlaceRole string

const (
	PlaceRoleOrigin      PlaceRole = "origin"
	PlaceRoleDestination PlaceRole = "destination"
)

// ResolutionError reports a query that produced no usable place
type ResolutionError struct {
	Role  PlaceRole
	Query string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s %q", e.Role, e.Query)
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolvedPlace
}
