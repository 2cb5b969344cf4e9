package run

import "errors"

var (
	// ErrRunNotFound indicates the run doesn't exist.
	ErrRunNotFound = errors.New("run not found")
	// ErrProjectNotFound indicates the owning project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrItemNotFound indicates the run or checklist item doesn't exist.
	ErrItemNotFound = errors.New("run or checklist item not found")
	// ErrInvalidOutcome indicates an outcome value outside PASS/FAIL/SKIP.
	ErrInvalidOutcome = errors.New("invalid outcome: use PASS, FAIL or SKIP")
	// ErrInvalidInput indicates invalid run input.
	ErrInvalidInput = errors.New("invalid run input")
)
