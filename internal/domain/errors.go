package domain

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUnsupportedManager = errors.New("unsupported package manager")
	ErrUnknownDesktop     = errors.New("desktop environment not recognized")
	ErrInvalidConfig      = errors.New("invalid configuration")
)
