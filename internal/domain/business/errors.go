package business

import "errors"

// Business domain errors
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrAdminRequired    = errors.New("admin privilege required")
	ErrInvalidToken     = errors.New("invalid or missing token")
)
