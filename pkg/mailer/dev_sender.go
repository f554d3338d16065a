package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development. Instead of calling an
// email provider it logs the message and returns a synthetic message id, so
// the contact flow can be exercised without a Resend account.
type DevSender struct {
	log *slog.Logger
}

// NewDevSender creates a development sender that logs emails.
func NewDevSender(log *slog.Logger) *DevSender {
	return &DevSender{log: log}
}

// Send logs the email instead of delivering it.
func (d *DevSender) Send(ctx context.Context, email *Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("dev-%s", uuid.NewString())
	d.log.InfoContext(ctx, "dev sender: email not delivered",
		slog.String("message_id", id),
		slog.String("to", email.To[0]),
		slog.String("subject", email.Subject),
		slog.String("reply_to", email.ReplyTo),
		slog.String("text", email.Text),
	)
	return id, nil
}
