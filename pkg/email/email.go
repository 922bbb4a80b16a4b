package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"careerhub-backend/config"
)

// sendTimeout bounds the SMTP round trip so a slow provider cannot stall the
// registration request indefinitely.
const sendTimeout = 10 * time.Second

// EmailService delivers one-time passwords over SMTP
type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// OtpEmailData holds the data for OTP verification emails
type OtpEmailData struct {
	Code         string
	ValidMinutes int
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
	}
}

// otpEmailTemplate is the HTML template for verification emails. The code
// must stay unambiguous plain text inside the markup.
const otpEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Email Verification</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .code { font-size: 28px; letter-spacing: 6px; font-weight: bold; background: white; padding: 15px; border-left: 4px solid #0066cc; text-align: center; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>CareerHub Email Verification</h1>
        </div>
        <div class="content">
            <p>Your OTP code is:</p>
            <div class="code">{{.Code}}</div>
            <p>This OTP is valid for {{.ValidMinutes}} minutes.</p>
        </div>
        <div class="footer">
            <p>If you did not request this code, you can safely ignore this email.</p>
        </div>
    </div>
</body>
</html>`

// SendOtpEmail sends the verification code to the given address. The send is
// bounded by sendTimeout or the caller's context, whichever ends first.
func (s *EmailService) SendOtpEmail(ctx context.Context, to, code string) error {
	tmpl, err := template.New("otp").Parse(otpEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, OtpEmailData{Code: code, ValidMinutes: 5}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: \"Career Hub\" <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: Email verification OTP\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.from,
		to,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	// smtp.SendMail has no context support, so run it in a goroutine and
	// race it against the deadline.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.from, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email: %w", ctx.Err())
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
