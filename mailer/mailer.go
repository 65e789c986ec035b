package mailer

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

// Sender delivers one message to one recipient. Connect, STARTTLS upgrade,
// authentication and submission failures all surface as a single error.
type Sender interface {
	Send(from, fromName, to, subject, body, contentType string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// SMTPConfigFromEnv reads the transport settings the scheduler exports.
func SMTPConfigFromEnv() (SMTPConfig, error) {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_SERVER"),
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
	if cfg.Host == "" {
		return SMTPConfig{}, fmt.Errorf("SMTP_SERVER is not set")
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return SMTPConfig{}, fmt.Errorf("SMTP_PORT: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

type smtpSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender builds the production sender. The dialer negotiates
// STARTTLS when the server offers it and authenticates with the configured
// credentials on every send.
func NewSMTPSender(cfg SMTPConfig) Sender {
	return &smtpSender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}
}

func (s *smtpSender) Send(from, fromName, to, subject, body, contentType string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from, fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)

	return s.dialer.DialAndSend(msg)
}
