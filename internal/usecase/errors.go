package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrFailedPrecondition    = errors.New("failed precondition")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
