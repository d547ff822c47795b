package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// SubmitContactInput carries a contact form submission.
type SubmitContactInput struct {
	Name           string
	Email          string
	Subject        string // optional
	Message        string
	IdempotencyKey string // optional
}

// SubmitContactResult is returned by Submit.
type SubmitContactResult struct {
	Contact *domain.ContactMessage
	// Replayed is true when the Idempotency-Key matched an earlier submission.
	Replayed bool
}

// ContactService defines contact intake.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*SubmitContactResult, error)
}
