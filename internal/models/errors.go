package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Handlers map these to HTTP status codes with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)
