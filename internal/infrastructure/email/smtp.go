package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrEmailNotConfigured is returned when sending is attempted with no
// SMTP host configured.
var ErrEmailNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// ReconnectNotifier mails a reconnect prompt when a tracker integration
// keeps failing and needs fresh authorization.
type ReconnectNotifier interface {
	SendReconnectEmail(to, userName, provider string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendReconnectEmail(to, userName, provider string) error {
	if s.config.Host == "" {
		return ErrEmailNotConfigured
	}

	reconnectURL := fmt.Sprintf("%s/api/v1/tracker/connect", s.config.BaseURL)

	subject := "Your tracker connection needs attention"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Tracker sync is failing</h2>
			<p>Hi %s,</p>
			<p>We have not been able to sync your %s data recently. The stored
			authorization appears to no longer work.</p>
			<p>Please reconnect your account:</p>
			<p><a href="%s">Reconnect tracker</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, userName, provider, reconnectURL, reconnectURL)

	plainBody := fmt.Sprintf(`
Hi %s,

We have not been able to sync your %s data recently. The stored
authorization appears to no longer work.

Please reconnect your account by visiting:
%s
	`, userName, provider, reconnectURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTestEmail sends a test email to verify the configuration
func (s *SMTPEmailService) SendTestEmail(to string) error {
	if s.config.Host == "" {
		return ErrEmailNotConfigured
	}

	subject := "Test Email"
	htmlBody := `
		<html>
		<body>
			<h2>Test Email</h2>
			<p>Your email configuration is working.</p>
		</body>
		</html>
	`
	plainBody := "Your email configuration is working."

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
