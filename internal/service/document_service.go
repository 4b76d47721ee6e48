package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/studydesk/dashboard/internal/logging"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/repository"
	"github.com/studydesk/dashboard/internal/storage"
	"go.uber.org/zap"
)

const (
	DefaultRecentDocuments = 5
	DefaultSignedURLTTL    = 60 * time.Second
)

// DocumentService reads uploaded documents and resolves their download links.
type DocumentService interface {
	List(ctx context.Context, opts model.DocumentListOptions) (*model.Page[*model.Document], error)
	// GetByID returns nil, nil when the document does not exist.
	GetByID(ctx context.Context, id string) (*model.Document, error)
	Recent(ctx context.Context, limit int) ([]*model.Document, error)
	Types(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*model.DocumentStats, error)

	// DownloadURL returns the public URL when the document has one, otherwise
	// a short-lived signed URL for its stored file.
	DownloadURL(ctx context.Context, id string) (string, error)
}

// DocumentServiceConfig configures signed download links.
type DocumentServiceConfig struct {
	Bucket       string
	SignedURLTTL time.Duration
}

type documentService struct {
	repo   repository.DocumentRepository
	signer storage.Signer
	cfg    DocumentServiceConfig
	log    *zap.SugaredLogger
}

// NewDocumentService creates a DocumentService. signer may be nil when no
// object store is configured; stored files then cannot be linked.
func NewDocumentService(repo repository.DocumentRepository, signer storage.Signer, cfg DocumentServiceConfig, log *zap.SugaredLogger) DocumentService {
	if cfg.Bucket == "" {
		cfg.Bucket = storage.DefaultBucket
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = DefaultSignedURLTTL
	}
	return &documentService{repo: repo, signer: signer, cfg: cfg, log: logging.OrNop(log)}
}

// List treats a user filter that is not a UUID as matching no documents.
func (s *documentService) List(ctx context.Context, opts model.DocumentListOptions) (*model.Page[*model.Document], error) {
	if !model.IsUnfiltered(opts.UserID) {
		id, ok := canonicalID(opts.UserID)
		if !ok {
			return model.NewPage[*model.Document](nil, 0), nil
		}
		opts.UserID = id
	}
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fetchFailed(s.log, "documents", err)
	}
	return model.NewPage(items, total), nil
}

func (s *documentService) GetByID(ctx context.Context, id string) (*model.Document, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, nil
	}
	d, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fetchFailed(s.log, "document", err)
	}
	return d, nil
}

func (s *documentService) Recent(ctx context.Context, limit int) ([]*model.Document, error) {
	if limit < 1 {
		limit = DefaultRecentDocuments
	}
	if limit > model.MaxPageSize {
		limit = model.MaxPageSize
	}
	docs, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fetchFailed(s.log, "recent documents", err)
	}
	if docs == nil {
		docs = []*model.Document{}
	}
	return docs, nil
}

func (s *documentService) Types(ctx context.Context) ([]string, error) {
	types, err := s.repo.Types(ctx)
	if err != nil {
		return nil, fetchFailed(s.log, "document types", err)
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

func (s *documentService) Stats(ctx context.Context) (*model.DocumentStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fetchFailed(s.log, "document stats", err)
	}
	return stats, nil
}

func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrDocumentNotFound
	}

	if u := strings.TrimSpace(deref(doc.PublicURL)); u != "" {
		return u, nil
	}

	filePath := strings.TrimSpace(deref(doc.FilePath))
	if filePath == "" {
		return "", ErrNoDownloadURL
	}
	if s.signer == nil {
		return "", operationFailed(s.log, "failed to generate download link",
			errors.New("object store not configured"), "document_id", doc.ID)
	}

	key := storage.ObjectPath(s.cfg.Bucket, filePath)
	signed, err := s.signer.SignedURL(ctx, key, s.cfg.SignedURLTTL)
	if err != nil {
		return "", operationFailed(s.log, "failed to generate download link", err,
			"document_id", doc.ID, "key", key)
	}
	return signed, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
