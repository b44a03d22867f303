package mailer

import "context"

// Notifier delivers a plain-text message to one or more recipients.
// Delivery failure never rolls back the record that triggered it; callers
// log the error and move on.
type Notifier interface {
	Notify(ctx context.Context, recipients []string, subject, body string) error
}
