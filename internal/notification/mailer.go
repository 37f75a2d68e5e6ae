package notification

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"crewcycle.io/crewcycle/internal/pkg/logger"
)

// Message is one outbound email. The ICS attachment is optional; the
// idempotency key lets a retried dispatch be recognized downstream.
type Message struct {
	To             string
	Subject        string
	Body           string
	ICS            []byte
	IdempotencyKey string
}

// Mailer dispatches email. Implementations must be safe for concurrent use.
type Mailer interface {
	// Send dispatches a single message.
	Send(ctx context.Context, msg Message) error

	// SendBatch dispatches messages one by one and returns a per-item error
	// slice of the same length. A failed item never blocks later items.
	SendBatch(ctx context.Context, msgs []Message) []error
}

// SMTPMailer delivers mail through an SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a mailer against the configured relay.
func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}
	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

// Send dispatches a single message through the relay.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	em := mail.NewMsg()
	if err := em.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := em.To(msg.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	em.Subject(msg.Subject)
	em.SetBodyString(mail.TypeTextPlain, msg.Body)
	if msg.IdempotencyKey != "" {
		em.SetGenHeader("X-Idempotency-Key", msg.IdempotencyKey)
	}
	if len(msg.ICS) > 0 {
		if err := em.AttachReader("invite.ics", bytes.NewReader(msg.ICS),
			mail.WithFileContentType(mail.ContentType("text/calendar"))); err != nil {
			return fmt.Errorf("attach ics: %w", err)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, em); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// SendBatch dispatches messages sequentially, collecting per-item errors.
func (m *SMTPMailer) SendBatch(ctx context.Context, msgs []Message) []error {
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		errs[i] = m.Send(ctx, msg)
	}
	return errs
}

var _ Mailer = (*SMTPMailer)(nil)

// LogMailer is the fallback when mail delivery is disabled. Messages are
// logged and treated as sent.
type LogMailer struct{}

// NewLogMailer creates the log-only mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message instead of delivering it.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	logger.Info("mail delivery disabled, message logged",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Bool("has_ics", len(msg.ICS) > 0),
		zap.String("idempotency_key", msg.IdempotencyKey),
	)
	return nil
}

// SendBatch logs every message.
func (m *LogMailer) SendBatch(ctx context.Context, msgs []Message) []error {
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		errs[i] = m.Send(ctx, msg)
	}
	return errs
}

var _ Mailer = (*LogMailer)(nil)
