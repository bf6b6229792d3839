package collections

import "errors"

var (
	ErrInvalidHandle = errors.New("invalid handle")
)
