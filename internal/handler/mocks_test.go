package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------------------------------------------------------------------------
// func-field service stubs
// ---------------------------------------------------------------------------

type mockContactService struct {
	listFunc         func(ctx context.Context, opts model.ContactListOptions) (*model.Page[*model.ContactMessage], error)
	getByIDFunc      func(ctx context.Context, id string) (*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
	statsFunc        func(ctx context.Context) (*model.DashboardStats, error)
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) (*model.Page[*model.ContactMessage], error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return model.NewPage[*model.ContactMessage](nil, 0), nil
}

func (m *mockContactService) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockContactService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.DashboardStats{}, nil
}

type mockDocumentService struct {
	listFunc        func(ctx context.Context, opts model.DocumentListOptions) (*model.Page[*model.Document], error)
	getByIDFunc     func(ctx context.Context, id string) (*model.Document, error)
	recentFunc      func(ctx context.Context, limit int) ([]*model.Document, error)
	typesFunc       func(ctx context.Context) ([]string, error)
	statsFunc       func(ctx context.Context) (*model.DocumentStats, error)
	downloadURLFunc func(ctx context.Context, id string) (string, error)
}

func (m *mockDocumentService) List(ctx context.Context, opts model.DocumentListOptions) (*model.Page[*model.Document], error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return model.NewPage[*model.Document](nil, 0), nil
}

func (m *mockDocumentService) GetByID(ctx context.Context, id string) (*model.Document, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentService) Recent(ctx context.Context, limit int) ([]*model.Document, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, limit)
	}
	return []*model.Document{}, nil
}

func (m *mockDocumentService) Types(ctx context.Context) ([]string, error) {
	if m.typesFunc != nil {
		return m.typesFunc(ctx)
	}
	return []string{}, nil
}

func (m *mockDocumentService) Stats(ctx context.Context) (*model.DocumentStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.DocumentStats{}, nil
}

func (m *mockDocumentService) DownloadURL(ctx context.Context, id string) (string, error) {
	if m.downloadURLFunc != nil {
		return m.downloadURLFunc(ctx, id)
	}
	return "", nil
}

type mockProfileService struct {
	listFunc               func(ctx context.Context, opts model.ProfileListOptions) (*model.Page[*model.Profile], error)
	getByIDFunc            func(ctx context.Context, id string) (*model.Profile, error)
	updateSubscriptionFunc func(ctx context.Context, id string, u model.SubscriptionUpdate) error
}

func (m *mockProfileService) List(ctx context.Context, opts model.ProfileListOptions) (*model.Page[*model.Profile], error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return model.NewPage[*model.Profile](nil, 0), nil
}

func (m *mockProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileService) UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate) error {
	if m.updateSubscriptionFunc != nil {
		return m.updateSubscriptionFunc(ctx, id, u)
	}
	return nil
}

type mockEmailService struct {
	logsFunc          func(ctx context.Context, page model.PageRequest) (*model.Page[*model.EmailLog], error)
	recipientsFunc    func(ctx context.Context, search string) ([]*model.Recipient, error)
	sendFunc          func(ctx context.Context, req model.SendEmailRequest) (*model.ActionResult, error)
	testConfigFunc    func(ctx context.Context) (*model.ActionResult, error)
	sendTestEmailFunc func(ctx context.Context, to string) (*model.ActionResult, error)
	verifyConfigFunc  func(ctx context.Context, cfg mail.Config) (*model.ActionResult, error)
}

func (m *mockEmailService) Logs(ctx context.Context, page model.PageRequest) (*model.Page[*model.EmailLog], error) {
	if m.logsFunc != nil {
		return m.logsFunc(ctx, page)
	}
	return model.NewPage[*model.EmailLog](nil, 0), nil
}

func (m *mockEmailService) Templates() []model.EmailTemplate {
	return mail.Templates()
}

func (m *mockEmailService) Recipients(ctx context.Context, search string) ([]*model.Recipient, error) {
	if m.recipientsFunc != nil {
		return m.recipientsFunc(ctx, search)
	}
	return []*model.Recipient{}, nil
}

func (m *mockEmailService) Send(ctx context.Context, req model.SendEmailRequest) (*model.ActionResult, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	return &model.ActionResult{Success: true}, nil
}

func (m *mockEmailService) TestConfig(ctx context.Context) (*model.ActionResult, error) {
	if m.testConfigFunc != nil {
		return m.testConfigFunc(ctx)
	}
	return &model.ActionResult{Success: true}, nil
}

func (m *mockEmailService) SendTestEmail(ctx context.Context, to string) (*model.ActionResult, error) {
	if m.sendTestEmailFunc != nil {
		return m.sendTestEmailFunc(ctx, to)
	}
	return &model.ActionResult{Success: true}, nil
}

func (m *mockEmailService) VerifyConfig(ctx context.Context, cfg mail.Config) (*model.ActionResult, error) {
	if m.verifyConfigFunc != nil {
		return m.verifyConfigFunc(ctx, cfg)
	}
	return &model.ActionResult{Success: true}, nil
}

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func doRequest(t *testing.T, e *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func newRequest(method, path, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return httptest.NewRequest(method, path, r)
}

func serveRequest(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
