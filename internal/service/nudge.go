package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

var ErrNoEmailLinked = errors.New("no email linked")

type NudgeService struct {
	emailService *EmailService
}

func NewNudgeService(emailService *EmailService) *NudgeService {
	return &NudgeService{emailService: emailService}
}

// Nudge builds the mail-client deep link for poking a member about their
// pending goals and, best effort, also delivers the nudge by email. A
// member without an email address cannot be nudged.
func (s *NudgeService) Nudge(ctx context.Context, memberEmail, memberName, fromName string) (mailto string, err error) {
	if memberEmail == "" {
		return "", ErrNoEmailLinked
	}

	mailto = BuildMailto(memberEmail, memberName)

	err = s.emailService.SendNudge(ctx, memberEmail, memberName, fromName)
	if err != nil {
		// The mailto link is still usable; email delivery is an extra.
		slog.Warn("nudge email delivery failed", "error", err, "to", memberEmail)
	}

	return mailto, nil
}

// BuildMailto constructs the mailto deep link with the nudge subject and
// body prefilled.
func BuildMailto(email, name string) string {
	subject := "Wake up! Goals pending"
	body := fmt.Sprintf("Hey %s, you have pending goals in our group.", name)

	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	return "mailto:" + email + "?" + params.Encode()
}
