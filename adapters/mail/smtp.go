// Package mail implements the contact-form Mailer over a transactional SMTP
// relay. Failures here are advisory by contract; the caller logs and moves on.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"portfolio/internal/application/service"
	"portfolio/internal/config"
	"portfolio/internal/domain/contact"
)

type smtpMailer struct {
	client *gomail.Client
	from   string
	owner  string
}

func NewSMTPMailer(cfg config.Config) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: cfg.SMTP.From, owner: cfg.SMTP.Owner}, nil
}

func (m *smtpMailer) NotifyOwner(ctx context.Context, s *contact.Submission) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(m.owner); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("New contact form submission: %s", s.Subject))
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"From: %s <%s>\n\nSubject: %s\n\n%s\n",
		s.Name, s.Email, s.Subject, s.Message,
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *smtpMailer) Acknowledge(ctx context.Context, s *contact.Submission) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(s.Email); err != nil {
		return err
	}
	msg.Subject("Thanks for getting in touch")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nThanks for your message about \"%s\". I read every submission and will get back to you soon.\n",
		s.Name, s.Subject,
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}
