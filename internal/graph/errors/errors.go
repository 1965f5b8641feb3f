package graph

import "errors"

var (
	ErrInternalServer = errors.New("internal server error; please contact support")
	ErrBadArgument    = errors.New("bad argument")
)
