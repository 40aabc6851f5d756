// Package apperr defines sentinel errors shared across packages.
package apperr

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrFileNameRequired = errors.New("file name required")
	ErrUnknownCounter   = errors.New("unknown tracker counter")
	ErrInvalidName      = errors.New("invalid document name")
	ErrUnknownDriver    = errors.New("unknown snapshot driver")
)
