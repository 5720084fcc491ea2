package domain

import "errors"

// Sentinel errors returned by repositories and services. Controllers branch on
// these with errors.Is to pick a response status; everything else is a server fault.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateEmail        = errors.New("email already in use")
	ErrDuplicateRegistration = errors.New("already registered for event")
	ErrForeignKey            = errors.New("referenced row does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidInput          = errors.New("invalid input")
)
