// event-app10/internal/notify/notify.go

// Package notify delivers the two best-effort side channels: LINE group push
// messages and emailed calendar invites. Every operation returns an error that
// the caller is expected to log and discard; a failed notification must never
// fail the request that triggered it, and nothing is retried.
package notify

import (
	"context"
	"time"

	"github.com/matsumurashin0125/event-app10/models"
)

// Notifier is what the handlers depend on. Tests substitute a counting fake.
type Notifier interface {
	// Push delivers a plain text message to the configured LINE group.
	Push(ctx context.Context, text string) error
	// SendInvite emails the recipient an ICS attachment for the candidate.
	SendInvite(ctx context.Context, cand models.Candidate, recipientName, recipientEmail string) error
}

// Service is the production Notifier backed by the LINE Messaging API and
// SendGrid.
type Service struct {
	line *lineClient
	mail *mailClient
	loc  *time.Location
}

// Config carries the credentials for both channels. Empty values are allowed;
// the corresponding sends then fail at call time with a descriptive error.
type Config struct {
	LineChannelToken string
	LineGroupID      string
	SendGridAPIKey   string
	FromEmail        string
	FromName         string
	Location         *time.Location
}

func NewService(cfg Config) *Service {
	return &Service{
		line: newLineClient(cfg.LineChannelToken, cfg.LineGroupID),
		mail: newMailClient(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName),
		loc:  cfg.Location,
	}
}

func (s *Service) Push(ctx context.Context, text string) error {
	return s.line.push(ctx, text)
}

func (s *Service) SendInvite(ctx context.Context, cand models.Candidate, recipientName, recipientEmail string) error {
	return s.mail.sendInvite(ctx, cand, recipientName, recipientEmail, s.loc)
}
