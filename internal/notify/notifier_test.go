package notify

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"actapi/internal/config"
)

type fakeSender struct {
	msgs []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, msgs ...*mail.Msg) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func fakeDialer(s Sender, err error) Dialer {
	return func(config.MailConfig) (Sender, error) { return s, err }
}

var (
	sendTime  = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	transport = config.MailConfig{
		FromAddress: "actas@empresa.com",
		AppPassword: "secret",
		SMTPHost:    "smtp.empresa.com",
		SMTPPort:    587,
		Timeout:     2 * time.Second,
	}
	recipients = []string{"destinatario1@empresa.com", "destinatario2@empresa.com"}
)

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "Acta_Reunion_16102026.pdf", AttachmentName(sendTime))
}

func TestNotifier_Send_Success(t *testing.T) {
	sender := &fakeSender{}
	n := New(WithDialer(fakeDialer(sender, nil)), WithClock(func() time.Time { return sendTime }))

	document := []byte("%PDF-1.3 fake")
	original := append([]byte(nil), document...)

	err := n.Send(context.Background(), document, "Acta generada", recipients, transport)
	require.NoError(t, err)
	assert.Equal(t, original, document)

	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.ElementsMatch(t, recipients, rcpts)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "Subject: Acta generada")
	assert.Contains(t, raw, "actas@empresa.com")
	assert.Contains(t, raw, "destinatario1@empresa.com")
	assert.Contains(t, raw, "destinatario2@empresa.com")
	assert.Contains(t, raw, "16/10/2026 09:30")
	assert.Contains(t, raw, "Acta_Reunion_16102026.pdf")
	assert.Contains(t, raw, "application/octet-stream")
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(document))
}

func TestNotifier_Send_Failures(t *testing.T) {
	tests := []struct {
		name       string
		dialer     Dialer
		recipients []string
		transport  config.MailConfig
		wantReason string
	}{
		{
			name:       "no recipients",
			dialer:     fakeDialer(&fakeSender{}, nil),
			transport:  transport,
			wantReason: "no recipients",
		},
		{
			name:       "invalid sender address",
			dialer:     fakeDialer(&fakeSender{}, nil),
			recipients: recipients,
			transport:  config.MailConfig{FromAddress: "not an address"},
			wantReason: "compose",
		},
		{
			name:       "dial setup fails",
			dialer:     fakeDialer(nil, errors.New("bad port")),
			recipients: recipients,
			transport:  transport,
			wantReason: "connect: bad port",
		},
		{
			name:       "auth rejected",
			dialer:     fakeDialer(&fakeSender{err: errors.New("535 authentication failed")}, nil),
			recipients: recipients,
			transport:  transport,
			wantReason: "send: 535 authentication failed",
		},
		{
			name: "transport panics",
			dialer: func(config.MailConfig) (Sender, error) {
				panic("boom")
			},
			recipients: recipients,
			transport:  transport,
			wantReason: "transport panic: boom",
		},
		{
			name:       "empty host",
			dialer:     SMTPDialer,
			recipients: recipients,
			transport:  config.MailConfig{FromAddress: "actas@empresa.com", SMTPPort: 587},
			wantReason: "connect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(WithDialer(tt.dialer))

			err := n.Send(context.Background(), []byte("%PDF"), "Acta", tt.recipients, tt.transport)

			var nerr *NotifyError
			require.ErrorAs(t, err, &nerr)
			assert.Contains(t, nerr.Reason, tt.wantReason)
		})
	}
}

func TestNotifier_Send_UnreachableHost(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	n := New()
	cfg := transport
	cfg.SMTPHost = "127.0.0.1"
	cfg.SMTPPort = port

	document := []byte("%PDF-1.3")
	err = n.Send(context.Background(), document, "Acta", recipients, cfg)

	var nerr *NotifyError
	require.ErrorAs(t, err, &nerr)
	assert.NotEmpty(t, nerr.Reason)
	assert.Equal(t, []byte("%PDF-1.3"), document)
}
