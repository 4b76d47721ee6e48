package service

import (
	"context"

	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/model"
)

// MaxRecipientResults caps the recipient picker.
const MaxRecipientResults = 100

// EmailService sends staff emails, keeps the audit log and manages the
// transport configuration.
type EmailService interface {
	// Logs returns one page of the audit log, newest first.
	Logs(ctx context.Context, page model.PageRequest) (*model.Page[*model.EmailLog], error)
	Templates() []model.EmailTemplate
	Recipients(ctx context.Context, search string) ([]*model.Recipient, error)

	// Send validates req, delivers one message to all recipients and writes
	// one log row per recipient. Nothing is sent when any address is invalid.
	Send(ctx context.Context, req model.SendEmailRequest) (*model.ActionResult, error)

	// TestConfig verifies the configured transport.
	TestConfig(ctx context.Context) (*model.ActionResult, error)
	// SendTestEmail sends the fixed test email to one address.
	SendTestEmail(ctx context.Context, to string) (*model.ActionResult, error)
	// VerifyConfig verifies cfg without storing it.
	VerifyConfig(ctx context.Context, cfg mail.Config) (*model.ActionResult, error)
}
