package repository

import (
	"context"
	"time"

	"github.com/studydesk/dashboard/internal/model"
)

// DB is the liveness check used by the health endpoint.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository is the persistence interface for contact messages.
type ContactRepository interface {
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error)
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
	Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error)
}

// ProfileRepository is the persistence interface for user profiles.
type ProfileRepository interface {
	List(ctx context.Context, opts model.ProfileListOptions) ([]*model.Profile, int, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	// FindByEmail returns ErrNotFound when no profile has exactly this email.
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	SearchRecipients(ctx context.Context, search string, limit int) ([]*model.Recipient, error)
	UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate, at time.Time) error
}

// DocumentRepository is the persistence interface for uploaded documents.
// Every returned document has UserName resolved from its owner.
type DocumentRepository interface {
	List(ctx context.Context, opts model.DocumentListOptions) ([]*model.Document, int, error)
	FindByID(ctx context.Context, id string) (*model.Document, error)
	Recent(ctx context.Context, limit int) ([]*model.Document, error)
	Types(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*model.DocumentStats, error)
}

// EmailLogRepository is the persistence interface for the email audit log.
type EmailLogRepository interface {
	List(ctx context.Context, page model.PageRequest) ([]*model.EmailLog, int, error)
	Insert(ctx context.Context, log *model.EmailLog) error
}
