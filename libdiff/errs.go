package libdiff

import "errors"

var (
	ErrKey  = errors.New("element key error")
	ErrDiff = errors.New("diff error")
)
