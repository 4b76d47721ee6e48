package service

import (
	"context"
	"errors"
	"time"

	"github.com/studydesk/dashboard/internal/logging"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/repository"
	"go.uber.org/zap"
)

// ProfileService lists user profiles and edits their subscription fields.
type ProfileService interface {
	List(ctx context.Context, opts model.ProfileListOptions) (*model.Page[*model.Profile], error)
	// GetByID returns nil, nil when the profile does not exist.
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	// UpdateSubscription writes only the fields present in u. Last write wins.
	UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate) error
}

type profileService struct {
	repo repository.ProfileRepository
	log  *zap.SugaredLogger
	now  func() time.Time
}

// NewProfileService creates a ProfileService backed by repo.
func NewProfileService(repo repository.ProfileRepository, log *zap.SugaredLogger) ProfileService {
	return &profileService{repo: repo, log: logging.OrNop(log), now: time.Now}
}

func (s *profileService) List(ctx context.Context, opts model.ProfileListOptions) (*model.Page[*model.Profile], error) {
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fetchFailed(s.log, "profiles", err)
	}
	return model.NewPage(items, total), nil
}

func (s *profileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, nil
	}
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fetchFailed(s.log, "profile", err)
	}
	return p, nil
}

func (s *profileService) UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate) error {
	id, ok := canonicalID(id)
	if !ok {
		return ErrProfileNotFound
	}
	err := s.repo.UpdateSubscription(ctx, id, u, s.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return operationFailed(s.log, "failed to update subscription", err, "profile_id", id)
	}
	return nil
}
