package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"teamtrack/internal/shared/config"
)

// Sender delivers transactional mail. The auth usecases depend on this
// interface so tests can swap in a recorder.
type Sender interface {
	SendPasswordResetEmail(to, username, token string) error
	SendPasswordChangedEmail(to, username string) error
}

type SMTPSender struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg *config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPSender) SendPasswordResetEmail(to, username, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>Hi %s,</p>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, username, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

Hi %s,

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, username, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) SendPasswordChangedEmail(to, username string) error {
	subject := "Password Changed Successfully"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Hi %s,</p>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact your administrator immediately.</p>
		</body>
		</html>
	`, username)

	plainBody := fmt.Sprintf(`
Password Changed

Hi %s,

Your password has been successfully changed.

If you didn't make this change, please contact your administrator immediately.
	`, username)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) sendEmail(to, subject, htmlBody, plainBody string) error {
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
