package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/studydesk/dashboard/internal/logging"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/repository"
	"go.uber.org/zap"
)

// newMessageWindow is how far back a message still counts as new.
const newMessageWindow = 24 * time.Hour

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	log  *zap.SugaredLogger
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, log *zap.SugaredLogger) ContactService {
	return &contactServiceImpl{repo: repo, log: logging.OrNop(log), now: time.Now}
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.Page[*model.ContactMessage], error) {
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fetchFailed(s.log, "messages", err)
	}
	return model.NewPage(items, total), nil
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, nil
	}
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fetchFailed(s.log, "message", err)
	}
	return m, nil
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return &ValidationError{Message: "status is required"}
	}
	id, ok := canonicalID(id)
	if !ok {
		return ErrMessageNotFound
	}
	err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMessageNotFound
	}
	if err != nil {
		return operationFailed(s.log, "failed to update message status", err, "id", id)
	}
	return nil
}

func (s *contactServiceImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx, s.now().UTC().Add(-newMessageWindow))
	if err != nil {
		return nil, fetchFailed(s.log, "dashboard stats", err)
	}
	return stats, nil
}
