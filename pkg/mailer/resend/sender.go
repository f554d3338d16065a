// Package resend implements mailer.Sender using the Resend API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/onetechcm/website/pkg/mailer"
)

// Sender delivers emails through Resend.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender. It returns the Resend message id on success.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return sent.Id, nil
}
