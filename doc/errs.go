package doc

import "errors"

var ErrBadNode = errors.New("bad node")
