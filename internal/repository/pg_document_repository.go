package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studydesk/dashboard/internal/model"
)

// PgDocumentRepository is the PostgreSQL implementation of DocumentRepository.
type PgDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPgDocumentRepository returns a PostgreSQL-backed DocumentRepository.
func NewPgDocumentRepository(pool *pgxpool.Pool) *PgDocumentRepository {
	return &PgDocumentRepository{pool: pool}
}

var _ DocumentRepository = (*PgDocumentRepository)(nil)

// The owner is followed once through user_id to resolve a display name.
const (
	documentSelectCols = `d.id, COALESCE(d.title, ''), d.summary, d.content, d.file_path, d.public_url, d.type,
	d.subject_id, d.user_id, d.created_at, d.updated_at, p.full_name, p.username`
	documentFrom = `documents d LEFT JOIN profiles p ON p.id = d.user_id`
)

var documentSearchCols = []string{"d.title", "d.summary"}

func scanDocument(scan func(...any) error) (*model.Document, error) {
	d := &model.Document{}
	var fullName, username *string
	if err := scan(&d.ID, &d.Title, &d.Summary, &d.Content, &d.FilePath, &d.PublicURL, &d.Type,
		&d.SubjectID, &d.UserID, &d.CreatedAt, &d.UpdatedAt, &fullName, &username); err != nil {
		return nil, err
	}
	d.UserName = model.OwnerDisplayName(fullName, username)
	return d, nil
}

// DocumentListQuery builds the list query for documents.
func DocumentListQuery(opts model.DocumentListOptions) *ListQuery {
	return NewListQuery(documentSelectCols, documentFrom, "d.created_at DESC, d.id DESC",
		opts.PageRequest, documentSearchCols...).
		Where("d.type", opts.Type).
		Where("d.user_id", opts.UserID)
}

func (r *PgDocumentRepository) List(ctx context.Context, opts model.DocumentListOptions) ([]*model.Document, int, error) {
	return listPage(ctx, r.pool, DocumentListQuery(opts), scanDocument)
}

func (r *PgDocumentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+documentSelectCols+` FROM `+documentFrom+` WHERE d.id = $1`, id)
	d, err := scanDocument(row.Scan)
	return notFound(d, err)
}

// Recent returns the newest documents without counting.
func (r *PgDocumentRepository) Recent(ctx context.Context, limit int) ([]*model.Document, error) {
	q := &ListQuery{
		Columns: documentSelectCols,
		From:    documentFrom,
		OrderBy: "d.created_at DESC, d.id DESC",
		Limit:   limit,
	}
	return queryRows(ctx, r.pool, q, scanDocument)
}

// Types returns the distinct non-empty document types in name order.
func (r *PgDocumentRepository) Types(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT type FROM documents WHERE type IS NOT NULL AND type <> '' ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PgDocumentRepository) Stats(ctx context.Context) (*model.DocumentStats, error) {
	var total, pdf, image, text int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE type = $1),
		        count(*) FILTER (WHERE type = $2),
		        count(*) FILTER (WHERE type = $3)
		 FROM documents`,
		model.DocumentTypePDF, model.DocumentTypeImage, model.DocumentTypeText,
	).Scan(&total, &pdf, &image, &text)
	if err != nil {
		return nil, err
	}
	return &model.DocumentStats{
		TotalDocuments: int(total),
		PDFDocuments:   int(pdf),
		ImageDocuments: int(image),
		TextDocuments:  int(text),
	}, nil
}
