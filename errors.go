package mdsegment

import "errors"

// ErrInvalidArgument is returned when input crosses the call boundary in a
// form the engine refuses to interpret.
var ErrInvalidArgument = errors.New("mdsegment: invalid argument")
