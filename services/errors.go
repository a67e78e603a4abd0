package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. Anything
// else coming out of a service is treated as an internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("invalid input")
)
