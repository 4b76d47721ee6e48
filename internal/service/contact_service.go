package service

import (
	"context"

	"github.com/studydesk/dashboard/internal/model"
)

// ContactService defines the read and triage operations on contact messages.
type ContactService interface {
	// List returns one page of messages. Status "" or "all" means no status filter.
	List(ctx context.Context, opts model.ContactListOptions) (*model.Page[*model.ContactMessage], error)

	// GetByID returns nil, nil when the message does not exist.
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)

	// UpdateStatus sets the status and stamps updated_at.
	UpdateStatus(ctx context.Context, id, status string) error

	// Stats returns the dashboard message counters.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
