// Package contact implements the contact form submission pipeline:
// parse and validate the request, escape user input, render the email
// notification, dispatch it through the configured provider, and map every
// failure to a user-safe result.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/onetechcm/website/pkg/logger"
	"github.com/onetechcm/website/pkg/mailer"
)

// Config holds contact form configuration.
// Embed this in the app config for env parsing with caarlos0/env.
type Config struct {
	// RecipientEmail receives the notification for every submission.
	RecipientEmail string `env:"CONTACT_RECIPIENT_EMAIL" envDefault:"hello@onetech.cm"`

	// FallbackEmail is surfaced in failure messages so users always have a
	// manual escape hatch when automated dispatch is unavailable.
	FallbackEmail string `env:"CONTACT_FALLBACK_EMAIL" envDefault:"hello@onetech.cm"`
}

// Service validates and dispatches contact form submissions. It is
// stateless and safe for concurrent use; each Submit call is independent.
type Service struct {
	sender mailer.Sender
	cfg    Config
	log    *slog.Logger
	dev    bool
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for dispatch diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithDevMode enables verbose error detail in logs and result messages.
// Must be off in production so provider internals never reach users.
func WithDevMode(enabled bool) Option {
	return func(s *Service) { s.dev = enabled }
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a contact service. A nil sender means the email provider is
// not configured; submissions will fail with the configuration message and
// no dispatch is attempted.
func New(sender mailer.Sender, cfg Config, opts ...Option) *Service {
	s := &Service{
		sender: sender,
		cfg:    cfg,
		log:    logger.NewNope(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs the full pipeline for one request and always returns exactly
// one Result. It never panics: unexpected failures during dispatch are
// recovered, logged, and mapped to a generic failure.
func (s *Service) Submit(ctx context.Context, req Request) (res Result) {
	submissionID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			s.log.ErrorContext(ctx, "unexpected error during contact submission",
				slog.String("submission_id", submissionID),
				slog.Any("panic", r),
				slog.String("stack", string(stack[:n])),
			)
			res = fail(s.withDevDetail(
				"An unexpected error occurred. Please try again later or contact us directly at "+s.cfg.FallbackEmail,
				fmt.Sprintf("%v", r),
			))
		}
	}()

	switch err := req.Validate(); err {
	case nil:
	case ErrMissingFields:
		return fail(MsgMissingFields)
	case ErrInvalidEmail:
		return fail(MsgInvalidEmail)
	default:
		return fail(MsgMissingFields)
	}

	if s.sender == nil {
		s.log.ErrorContext(ctx, "contact submission rejected: email service is not configured",
			slog.String("submission_id", submissionID),
		)
		return fail("Email service is not configured. Please contact us directly at " + s.cfg.FallbackEmail)
	}

	html, text, err := renderNotification(req, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render contact notification",
			slog.String("submission_id", submissionID),
			slog.String("error", err.Error()),
		)
		return fail(s.withDevDetail(
			"Failed to send your message. Please try again later or contact us directly at "+s.cfg.FallbackEmail,
			err.Error(),
		))
	}

	email := &mailer.Email{
		To:      []string{s.cfg.RecipientEmail},
		Subject: fmt.Sprintf("New contact form submission from %s", req.Name),
		HTML:    html,
		Text:    text,
		// Replies from the recipient's mail client go straight to the
		// submitter, not the sending identity.
		ReplyTo: req.Email,
	}

	messageID, err := s.sender.Send(ctx, email)
	if err != nil {
		attrs := []any{
			slog.String("submission_id", submissionID),
			slog.String("error_kind", fmt.Sprintf("%T", err)),
			slog.String("error", err.Error()),
		}
		if s.dev {
			// Full payload stays out of production logs to avoid leaking
			// provider internals.
			attrs = append(attrs, slog.String("detail", fmt.Sprintf("%+v", err)))
		}
		s.log.ErrorContext(ctx, "contact notification dispatch failed", attrs...)

		return fail(s.withDevDetail(
			"Failed to send your message. Please try again later or contact us directly at "+s.cfg.FallbackEmail,
			err.Error(),
		))
	}

	s.log.InfoContext(ctx, "contact notification sent",
		slog.String("submission_id", submissionID),
		slog.String("message_id", messageID),
	)
	return succeed(MsgSuccess)
}

// withDevDetail appends the underlying error text in parentheses for
// debugger visibility. Production results carry the generic message only.
func (s *Service) withDevDetail(msg, detail string) string {
	if s.dev && detail != "" {
		return fmt.Sprintf("%s (%s)", msg, detail)
	}
	return msg
}
