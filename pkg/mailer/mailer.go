package mailer

import (
	"fmt"
	"net/smtp"

	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers a confirmation code to an address. The transport is
// deliberately abstract: production uses SMTP, development logs the
// code, tests capture it.
type Mailer interface {
	SendConfirmationCode(email, username, code string) error
}

// SMTPMailer sends codes through a plain SMTP relay.
type SMTPMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *SMTPMailer) SendConfirmationCode(email, username, code string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: review-hub confirmation code\r\n\r\n"+
			"Hello %s,\r\n\r\nconfirmation_code: %s\r\n",
		m.config.From, email, username, code,
	)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{email}, []byte(msg)); err != nil {
		m.log.Error("Failed to send confirmation code",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("send confirmation code to %s: %w", email, err)
	}

	return nil
}

// LogMailer writes the code to the log instead of sending it. Used when
// no SMTP host is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log.With(zap.String("mailer", "log"))}
}

func (m *LogMailer) SendConfirmationCode(email, username, code string) error {
	m.log.Info("Confirmation code issued",
		zap.String("email", email),
		zap.String("username", username),
		zap.String("confirmation_code", code),
	)
	return nil
}
