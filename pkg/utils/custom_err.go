package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPackageNotFound = errors.New("package not found")
	ErrDatabaseError   = errors.New("database error")
)
