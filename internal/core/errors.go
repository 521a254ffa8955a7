package core

import "errors"

// ErrConfig marks invalid generation parameters: a rule outside the Wolfram
// range, non-positive dimensions, or a malformed color. It is raised before
// any simulation work begins and is never retried.
var ErrConfig = errors.New("invalid configuration")
