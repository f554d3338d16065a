// Package mailer defines a provider-neutral contract for sending
// transactional email notifications.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no body content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrSendFailed indicates email delivery failed.
	ErrSendFailed = errors.New("failed to send email")
)

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Override default sender (if provider allows)
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Validate checks the email has the minimum required fields.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the provider-assigned
	// message id for traceability.
	Send(ctx context.Context, email *Email) (string, error)
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
