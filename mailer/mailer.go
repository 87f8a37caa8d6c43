// Package mailer implements the mail transport over SMTP.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	gomail "gopkg.in/gomail.v2"
)

const (
	// sendTimeout bounds one delivery attempt including retries
	sendTimeout = 30 * time.Second

	// maxRetries is how many times a failed send is retried before the
	// failure is reported to the caller
	maxRetries = 2
)

// SMTPMailer sends mail through an SMTP relay, retrying transient failures
// with exponential backoff
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// New creates a mailer for the given SMTP relay
func New(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers one message to one recipient
func (m *SMTPMailer) Send(ctx context.Context, from, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	operation := func() error {
		return m.dialer.DialAndSend(msg)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	return nil
}
