package services

import "errors"

// Error taxonomy shared by the services. Endpoints map these onto HTTP
// statuses; anything unrecognized surfaces as a generic 500.
var (
	// ErrInvalidCredentials is the single login failure. Username and
	// password failures are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden: the caller is authenticated but is neither the
	// resource owner nor an admin.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation wraps malformed or rejected input.
	ErrValidation = errors.New("validation failed")
)
