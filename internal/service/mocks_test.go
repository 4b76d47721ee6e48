package service

import (
	"context"
	"time"

	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/model"
)

// ---------------------------------------------------------------------------
// func-field stubs for the repositories and collaborators
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	listFunc         func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error)
	findByIDFunc     func(ctx context.Context, id string) (*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id, status string, at time.Time) error
	statsFunc        func(ctx context.Context, since time.Time) (*model.DashboardStats, error)
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, at)
	}
	return nil
}

func (m *mockContactRepository) Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, since)
	}
	return &model.DashboardStats{}, nil
}

type mockProfileRepository struct {
	listFunc               func(ctx context.Context, opts model.ProfileListOptions) ([]*model.Profile, int, error)
	findByIDFunc           func(ctx context.Context, id string) (*model.Profile, error)
	findByEmailFunc        func(ctx context.Context, email string) (*model.Profile, error)
	searchRecipientsFunc   func(ctx context.Context, search string, limit int) ([]*model.Recipient, error)
	updateSubscriptionFunc func(ctx context.Context, id string, u model.SubscriptionUpdate, at time.Time) error
}

func (m *mockProfileRepository) List(ctx context.Context, opts model.ProfileListOptions) ([]*model.Profile, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) SearchRecipients(ctx context.Context, search string, limit int) ([]*model.Recipient, error) {
	if m.searchRecipientsFunc != nil {
		return m.searchRecipientsFunc(ctx, search, limit)
	}
	return nil, nil
}

func (m *mockProfileRepository) UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate, at time.Time) error {
	if m.updateSubscriptionFunc != nil {
		return m.updateSubscriptionFunc(ctx, id, u, at)
	}
	return nil
}

type mockDocumentRepository struct {
	listFunc     func(ctx context.Context, opts model.DocumentListOptions) ([]*model.Document, int, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Document, error)
	recentFunc   func(ctx context.Context, limit int) ([]*model.Document, error)
	typesFunc    func(ctx context.Context) ([]string, error)
	statsFunc    func(ctx context.Context) (*model.DocumentStats, error)
}

func (m *mockDocumentRepository) List(ctx context.Context, opts model.DocumentListOptions) ([]*model.Document, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockDocumentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentRepository) Recent(ctx context.Context, limit int) ([]*model.Document, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockDocumentRepository) Types(ctx context.Context) ([]string, error) {
	if m.typesFunc != nil {
		return m.typesFunc(ctx)
	}
	return nil, nil
}

func (m *mockDocumentRepository) Stats(ctx context.Context) (*model.DocumentStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.DocumentStats{}, nil
}

type mockEmailLogRepository struct {
	listFunc   func(ctx context.Context, page model.PageRequest) ([]*model.EmailLog, int, error)
	insertFunc func(ctx context.Context, l *model.EmailLog) error
	inserted   []*model.EmailLog
}

func (m *mockEmailLogRepository) List(ctx context.Context, page model.PageRequest) ([]*model.EmailLog, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, 0, nil
}

func (m *mockEmailLogRepository) Insert(ctx context.Context, l *model.EmailLog) error {
	m.inserted = append(m.inserted, l)
	if m.insertFunc != nil {
		return m.insertFunc(ctx, l)
	}
	return nil
}

type mockSigner struct {
	signedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	calls         int
}

func (m *mockSigner) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	m.calls++
	if m.signedURLFunc != nil {
		return m.signedURLFunc(ctx, key, expiry)
	}
	return "https://signed.example/" + key, nil
}

type mockSender struct {
	sendFunc   func(ctx context.Context, msg mail.Message) error
	verifyFunc func(ctx context.Context) error
	sent       []mail.Message
}

func (m *mockSender) Send(ctx context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return nil
}

func (m *mockSender) Verify(ctx context.Context) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx)
	}
	return nil
}

func strPtr(s string) *string { return &s }
