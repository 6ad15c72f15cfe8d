package services

import "context"

// EmailValidator optionally vets an address beyond the format check, e.g.
// against an external reputation service.
type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

// LocalValidator accepts any address that already passed the format check.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (v *LocalValidator) Validate(ctx context.Context, email string) error {
	return nil
}
