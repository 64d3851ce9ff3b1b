package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appName   string
}

func NewEmailService(apiKey, fromEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appName:   appName,
	}
}

// SendNudge delivers a nudge to a group member with pending goals.
// In development the email is logged instead of sent.
func (s *EmailService) SendNudge(ctx context.Context, toEmail, toName, fromName string) error {
	subject, body := nudgeEmailTemplate(toName, fromName, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "nudge", "to", toEmail, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "nudge", "to", toEmail)
	}
	return err
}

func nudgeEmailTemplate(toName, fromName, appName string) (subject, body string) {
	subject = "Wake up! Goals pending"
	body = fmt.Sprintf(
		"Hey %s,\n\n%s noticed you have pending goals in your group on %s. Time to get moving!\n\n— %s",
		toName, fromName, appName, appName,
	)
	return subject, body
}
