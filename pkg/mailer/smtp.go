package mailer

import (
	"context"
	"log"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends mail through an SMTP relay. When no host is configured
// it stays disabled and only logs what would have been sent.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP builds a notifier. An empty host returns a disabled notifier so
// local development works without a mail relay.
func NewSMTP(host string, port int, username, password, from string) *SMTPNotifier {
	n := &SMTPNotifier{from: from}
	if host == "" {
		log.Printf("mailer: SMTP not configured, outbound mail disabled")
		return n
	}
	n.dialer = gomail.NewDialer(host, port, username, password)
	return n
}

func (n *SMTPNotifier) Notify(ctx context.Context, recipients []string, subject, body string) error {
	if n.dialer == nil {
		log.Printf("mailer: (disabled) to=%v subject=%q", recipients, subject)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	// gomail has no context support; run the send in a goroutine so a slow
	// relay cannot stall the request past the caller's deadline.
	done := make(chan error, 1)
	go func() {
		done <- n.dialer.DialAndSend(msg)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
