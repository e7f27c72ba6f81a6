package ir

import "errors"

var (
	errUnknownType = errors.New("unknown node type")

	ErrNotMapping = errors.New("not a mapping")
)
