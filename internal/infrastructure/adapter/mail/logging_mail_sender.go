package mail

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/notification"
	"github.com/go-playground/validator/v10"
)

// LoggingMailSender delivers mail to the application log instead of an MTA
type LoggingMailSender struct {
	logger   coreport.Logger
	validate *validator.Validate
}

var _ notification.MailSender = (*LoggingMailSender)(nil)

// NewLoggingMailSender creates a new LoggingMailSender
func NewLoggingMailSender(logger coreport.Logger) *LoggingMailSender {
	return &LoggingMailSender{
		logger:   logger,
		validate: validator.New(),
	}
}

// Send logs the mail after checking its addresses
func (s *LoggingMailSender) Send(ctx context.Context, mail notification.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.validate.Var(mail.To, "required,email"); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", mail.To, err)
	}
	if err := s.validate.Var(mail.From, "required,email"); err != nil {
		return fmt.Errorf("invalid sender %q: %w", mail.From, err)
	}

	s.logger.Info("Mail sent", map[string]any{
		"to":      mail.To,
		"from":    mail.From,
		"subject": mail.Subject,
		"body":    mail.Body,
	})
	return nil
}
