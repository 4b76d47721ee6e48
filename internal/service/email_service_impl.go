package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/studydesk/dashboard/internal/logging"
	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/metrics"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/repository"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether address is acceptable as a recipient.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(address)
}

type emailService struct {
	sender    mail.Sender
	logs      repository.EmailLogRepository
	profiles  repository.ProfileRepository
	log       *zap.SugaredLogger
	now       func() time.Time
	newSender func(mail.Config) mail.Sender
}

// NewEmailService creates an EmailService delivering through sender.
func NewEmailService(sender mail.Sender, logs repository.EmailLogRepository, profiles repository.ProfileRepository, log *zap.SugaredLogger) EmailService {
	return &emailService{
		sender:    sender,
		logs:      logs,
		profiles:  profiles,
		log:       logging.OrNop(log),
		now:       time.Now,
		newSender: mail.NewSender,
	}
}

func (s *emailService) Logs(ctx context.Context, page model.PageRequest) (*model.Page[*model.EmailLog], error) {
	items, total, err := s.logs.List(ctx, page)
	if err != nil {
		return nil, fetchFailed(s.log, "email logs", err)
	}
	for _, l := range items {
		l.RecipientName = l.DisplayName()
	}
	return model.NewPage(items, total), nil
}

func (s *emailService) Templates() []model.EmailTemplate {
	return mail.Templates()
}

func (s *emailService) Recipients(ctx context.Context, search string) ([]*model.Recipient, error) {
	items, err := s.profiles.SearchRecipients(ctx, strings.TrimSpace(search), MaxRecipientResults)
	if err != nil {
		return nil, fetchFailed(s.log, "recipients", err)
	}
	if items == nil {
		items = []*model.Recipient{}
	}
	return items, nil
}

func (s *emailService) Send(ctx context.Context, req model.SendEmailRequest) (*model.ActionResult, error) {
	// Blank entries are kept so validation rejects the whole send.
	recipients := make([]string, len(req.Recipients))
	for i, r := range req.Recipients {
		recipients[i] = strings.TrimSpace(r)
	}
	if len(recipients) == 0 || strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, &ValidationError{Message: "recipients, subject, and body are required"}
	}
	if err := validateAddresses(recipients); err != nil {
		return nil, err
	}

	err := s.sender.Send(ctx, mail.Message{To: recipients, Subject: req.Subject, HTML: req.Body})
	if err != nil {
		return nil, operationFailed(s.log, "failed to send email", err, "recipients", len(recipients))
	}

	if req.SaveAsTemplate && strings.TrimSpace(req.TemplateName) != "" {
		s.log.Infow("template save requested; templates are static and it was not stored",
			"template_name", req.TemplateName)
	}

	s.writeLogs(ctx, recipients, req.Subject, req.Body)

	return &model.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Email sent successfully to %d recipient(s)", len(recipients)),
	}, nil
}

// writeLogs records one audit row per recipient. Failures are logged only;
// the email has already been delivered.
func (s *emailService) writeLogs(ctx context.Context, recipients []string, subject, body string) {
	for _, addr := range recipients {
		profile, err := s.profiles.FindByEmail(ctx, addr)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnw("recipient profile lookup failed", "email", addr, "error", err)
		}
		if err != nil {
			profile = nil
		}

		entry := &model.EmailLog{
			RecipientEmail: addr,
			RecipientName:  model.RecipientName(profile, addr),
			Subject:        subject,
			Body:           body,
			Status:         model.EmailStatusSent,
			SentAt:         s.now().UTC(),
		}
		if profile != nil {
			id := profile.ID
			entry.RecipientID = &id
		}
		if err := s.logs.Insert(ctx, entry); err != nil {
			metrics.EmailLogWriteFailures.Inc()
			s.log.Errorw("email log insert failed", "email", addr, "error", err)
		}
	}
}

func validateAddresses(addrs []string) error {
	var invalid []string
	for _, a := range addrs {
		if !ValidEmail(a) {
			if a == "" {
				a = `""`
			}
			invalid = append(invalid, a)
		}
	}
	switch len(invalid) {
	case 0:
		return nil
	case 1:
		return &ValidationError{Message: "invalid email address: " + invalid[0]}
	default:
		return &ValidationError{Message: "invalid email addresses: " + strings.Join(invalid, ", ")}
	}
}

func (s *emailService) TestConfig(ctx context.Context) (*model.ActionResult, error) {
	if err := s.sender.Verify(ctx); err != nil {
		return nil, operationFailed(s.log, "failed to connect to email server", err)
	}
	return &model.ActionResult{Success: true, Message: "Email server connection verified"}, nil
}

func (s *emailService) SendTestEmail(ctx context.Context, to string) (*model.ActionResult, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, &ValidationError{Message: "email address is required"}
	}
	if err := validateAddresses([]string{to}); err != nil {
		return nil, err
	}

	msg, err := mail.TestMessage(to, s.now())
	if err != nil {
		return nil, operationFailed(s.log, "failed to send test email", err)
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, operationFailed(s.log, "failed to send test email", err, "to", to)
	}
	return &model.ActionResult{Success: true, Message: "Test email sent successfully to " + to}, nil
}

func (s *emailService) VerifyConfig(ctx context.Context, cfg mail.Config) (*model.ActionResult, error) {
	cfg.Host = strings.TrimSpace(cfg.Host)
	if cfg.Host == "" {
		return nil, &ValidationError{Message: "host is required"}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, &ValidationError{Message: "port must be between 1 and 65535"}
	}
	if cfg.From != "" && !ValidEmail(cfg.From) {
		return nil, &ValidationError{Message: "invalid email address: " + cfg.From}
	}

	s.log.Infow("verifying email configuration",
		"host", cfg.Host, "port", cfg.Port, "user", cfg.User, "secure", cfg.Secure, "from", cfg.From)
	if err := s.newSender(cfg).Verify(ctx); err != nil {
		return nil, operationFailed(s.log, "failed to verify email configuration", err, "host", cfg.Host)
	}
	return &model.ActionResult{Success: true, Message: "Email configuration verified successfully"}, nil
}
