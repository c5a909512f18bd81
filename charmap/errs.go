package charmap

import "errors"

var ErrAllocationExhausted = errors.New("placeholder characters exhausted")
