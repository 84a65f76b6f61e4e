package telemetry

import "errors"

var (
	ErrValidation  = errors.New("invalid input")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
)
