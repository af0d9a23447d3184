package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"revive_physio_go/config"
	"revive_physio_go/models"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

// NewSubmissionEmail wraps a rendered template into a message addressed to
// the clinic's fixed notification inbox.
func NewSubmissionEmail(cfg *config.Config, rendered models.RenderedEmail) *Email {
	return &Email{
		To:       []string{cfg.EmailTo},
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
	}
}

// SendEmail sends an email over SMTP. The dialer is rebuilt per call; there
// is no pooled connection.
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	if email.HTMLBody == "" {
		return fmt.Errorf("email must have an HTML body")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailFrom)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.SSL = cfg.SMTPSecure

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %v", err)
	}

	log.Printf("Email sent successfully to: %v", email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
