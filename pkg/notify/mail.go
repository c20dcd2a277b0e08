package notify

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/mail.v2"
)

var ErrMailNotConfigured = errors.New("mail host, sender, or recipients not configured")

// MailConfig is how to reach the SMTP relay and who gets the report.
type MailConfig struct {
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	From     string   `yaml:"from"`
	To       []string `yaml:"to"`
}

// Mail sends the report as a plain text email.
type Mail struct {
	cfg  MailConfig
	send func(*mail.Message) error
}

func NewMail(cfg MailConfig) *Mail {
	m := &Mail{cfg: cfg}
	m.send = func(msg *mail.Message) error {
		d := mail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
		return d.DialAndSend(msg)
	}
	return m
}

func (m *Mail) Name() string {
	return "mail"
}

func (m *Mail) message(subject, body string) *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return msg
}

func (m *Mail) Notify(_ context.Context, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.From == "" || len(m.cfg.To) == 0 {
		return ErrMailNotConfigured
	}
	if err := m.send(m.message(subject, body)); err != nil {
		return fmt.Errorf("failed to send mail through %s:%d: %w", m.cfg.Host, m.cfg.Port, err)
	}
	return nil
}
