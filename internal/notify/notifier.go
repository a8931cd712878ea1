// Package notify emails rendered actas to the distribution list over an authenticated,
// STARTTLS-upgraded SMTP session.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"actapi/internal/config"
)

// NotifyError is returned for any configuration, transport, authentication or protocol
// failure. Reason is safe to show to a user.
type NotifyError struct {
	Reason string
	Err    error
}

func (e *NotifyError) Error() string { return "notify: " + e.Reason }

func (e *NotifyError) Unwrap() error { return e.Err }

func fail(step string, err error) *NotifyError {
	return &NotifyError{Reason: fmt.Sprintf("%s: %v", step, err), Err: err}
}

// Sender submits composed messages in a single SMTP session and closes it afterwards.
// *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Dialer builds a Sender for the given transport settings.
type Dialer func(transport config.MailConfig) (Sender, error)

// SMTPDialer returns a go-mail client that requires STARTTLS and authenticates with
// SMTP PLAIN using the sender address and app password.
func SMTPDialer(transport config.MailConfig) (Sender, error) {
	opts := []mail.Option{
		mail.WithPort(transport.SMTPPort),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(transport.FromAddress),
		mail.WithPassword(transport.AppPassword),
	}
	if transport.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(transport.Timeout))
	}
	c, err := mail.NewClient(transport.SMTPHost, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AttachmentName is the file name of the emailed PDF for the given send time.
func AttachmentName(t time.Time) string {
	return "Acta_Reunion_" + t.Format("02012006") + ".pdf"
}

// Notifier emails actas. It keeps no state between calls.
type Notifier struct {
	dial Dialer
	now  func() time.Time
	log  *zap.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDialer replaces the SMTP dialer, mainly for tests.
func WithDialer(d Dialer) Option {
	return func(n *Notifier) { n.dial = d }
}

// WithClock sets the time source used for the body stamp and attachment name.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(n *Notifier) { n.log = l }
}

// New returns a Notifier that talks SMTP unless configured otherwise.
func New(opts ...Option) *Notifier {
	n := &Notifier{dial: SMTPDialer, now: time.Now, log: zap.NewNop()}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Send emails document as an attachment to every recipient in one transaction.
// It makes exactly one delivery attempt and never retries. document is not modified.
// Every failure is returned as a *NotifyError.
func (n *Notifier) Send(ctx context.Context, document []byte, subject string, recipients []string, transport config.MailConfig) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &NotifyError{Reason: fmt.Sprintf("transport panic: %v", p)}
		}
	}()

	if len(recipients) == 0 {
		return &NotifyError{Reason: "no recipients configured"}
	}

	sentAt := n.now()
	msg, err := compose(document, subject, recipients, transport.FromAddress, sentAt)
	if err != nil {
		return fail("compose", err)
	}

	client, err := n.dial(transport)
	if err != nil {
		return fail("connect", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		n.log.Warn("acta email failed",
			zap.String("smtp_host", transport.SMTPHost),
			zap.Int("smtp_port", transport.SMTPPort),
			zap.Error(err),
		)
		return fail("send", err)
	}

	n.log.Info("acta emailed",
		zap.String("smtp_host", transport.SMTPHost),
		zap.Int("recipients", len(recipients)),
		zap.String("attachment", AttachmentName(sentAt)),
		zap.Int("size", len(document)),
	)
	return nil
}

func compose(document []byte, subject string, recipients []string, from string, sentAt time.Time) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, err
	}
	if err := m.To(recipients...); err != nil {
		return nil, err
	}
	m.Subject(subject)
	m.SetDateWithValue(sentAt)
	m.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Adjunto el PDF de la acta de reunión generada el %s.", sentAt.Format("02/01/2006 15:04")))

	if err := m.AttachReader(AttachmentName(sentAt), bytes.NewReader(document),
		mail.WithFileContentType(mail.TypeAppOctetStream)); err != nil {
		return nil, err
	}
	return m, nil
}
