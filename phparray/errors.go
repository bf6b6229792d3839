package phparray

import "errors"

var (
	ErrTypeMismatch = errors.New("type mismatch")
)
