package services

import "context"

// EmailSender is the outbound mail surface the auth flows depend on. The
// URLs carry the raw token as a query parameter.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, resetURL string) error
}
