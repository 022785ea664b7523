// internal/services/errors.go
package services

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("not authorized for this record")
	ErrInvalidRole  = errors.New("invalid role for this operation")
	ErrOutOfStock   = errors.New("insufficient stock")
	ErrUnavailable  = errors.New("product is not available for purchase")
	ErrBadLifecycle = errors.New("operation not allowed in current status")
)
