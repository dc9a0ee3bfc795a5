package notifications

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MailerService implements domain.NotificationService over SMTP.
type MailerService struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

// MailerConfig holds the SMTP settings for the mailer. An empty Host
// switches the mailer into log-only mode, useful for local development.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewMailerService creates a new SMTP notification service
func NewMailerService(cfg MailerConfig, logger zerolog.Logger) domain.NotificationService {
	var dialer *gomail.Dialer
	if cfg.Host != "" {
		dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}

	return &MailerService{
		dialer: dialer,
		from:   cfg.From,
		logger: logger,
	}
}

// SendVerification implements domain.NotificationService
func (m *MailerService) SendVerification(email, code string) error {
	return m.send(email, "Verify your email", verificationBody(code))
}

// SendWelcome implements domain.NotificationService
func (m *MailerService) SendWelcome(email, name string) error {
	return m.send(email, "Welcome!", welcomeBody(name))
}

// SendPasswordReset implements domain.NotificationService
func (m *MailerService) SendPasswordReset(email, resetURL string) error {
	return m.send(email, "Reset your password", passwordResetBody(resetURL))
}

// SendResetSuccess implements domain.NotificationService
func (m *MailerService) SendResetSuccess(email string) error {
	return m.send(email, "Your password was changed", resetSuccessBody())
}

func (m *MailerService) send(to, subject, htmlBody string) error {
	// SMTP not configured: log the message instead of sending.
	if m.dialer == nil {
		m.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, logging email instead of sending")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}
	return nil
}
