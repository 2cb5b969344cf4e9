package checklist

import "errors"

var (
	// ErrProjectNotFound indicates the owning project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
)
