package notification

import "context"

// Mail is a plain-text message addressed to a single recipient
type Mail struct {
	To      string
	From    string
	Subject string
	Body    string
}

// MailSender delivers mails
type MailSender interface {
	// Send delivers the mail or returns an error describing why it could not
	Send(ctx context.Context, mail Mail) error
}
