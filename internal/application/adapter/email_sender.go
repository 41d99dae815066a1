package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	Text    string

	// SenderEmail and SenderPassword are used by credential-based
	// providers (SMTP). Provider-key senders ignore them.
	SenderEmail    string
	SenderPassword string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external
// provider. Send either fully succeeds or fails with one consolidated
// error; there is no partial-send outcome.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
