// Package mail sends account notifications through an SMTP transport.
package mail

import (
	"context" // Cancellation of the SMTP exchange
	"fmt"     // Message formatting

	gomail "github.com/wneessen/go-mail" // SMTP client

	"planetary_api/internal/config" // Mail transport settings
)

// Sender delivers password reset messages
type Sender interface {
	SendPasswordReset(ctx context.Context, to, password string) error
}

// SMTPSender implements Sender over SMTP
type SMTPSender struct {
	cfg config.MailConfig
}

// NewSMTPSender builds a sender from the mail configuration
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendPasswordReset mails the new password to the account owner
func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, password string) error {
	msg, err := NewPasswordResetMessage(s.cfg.From, to, password)
	if err != nil {
		return err
	}
	client, err := gomail.NewClient(s.cfg.Server, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("mail: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send to %s: %w", to, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(s.cfg.Timeout),
	}
	switch {
	case s.cfg.UseSSL:
		opts = append(opts, gomail.WithSSL())
	case s.cfg.UseTLS:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

// NewPasswordResetMessage composes the plaintext reset message
func NewPasswordResetMessage(from, to, password string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mail: from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mail: to: %w", err)
	}
	msg.Subject("Your planetary API password")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("Your planetary API password has been reset.\n\nYour new password is: %s\n", password))
	return msg, nil
}
