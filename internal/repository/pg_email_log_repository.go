package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studydesk/dashboard/internal/model"
)

// PgEmailLogRepository is the PostgreSQL implementation of EmailLogRepository.
type PgEmailLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgEmailLogRepository returns a PostgreSQL-backed EmailLogRepository.
func NewPgEmailLogRepository(pool *pgxpool.Pool) *PgEmailLogRepository {
	return &PgEmailLogRepository{pool: pool}
}

var _ EmailLogRepository = (*PgEmailLogRepository)(nil)

const emailLogSelectCols = `id, recipient_id, recipient_email, COALESCE(recipient_name, ''),
	COALESCE(subject, ''), COALESCE(body, ''), COALESCE(status, ''), sent_at`

func scanEmailLog(scan func(...any) error) (*model.EmailLog, error) {
	l := &model.EmailLog{}
	if err := scan(&l.ID, &l.RecipientID, &l.RecipientEmail, &l.RecipientName,
		&l.Subject, &l.Body, &l.Status, &l.SentAt); err != nil {
		return nil, err
	}
	return l, nil
}

// EmailLogListQuery builds the list query for email logs. Logs are not searchable
// and are ordered by send time.
func EmailLogListQuery(page model.PageRequest) *ListQuery {
	page.Search = ""
	return NewListQuery(emailLogSelectCols, "email_logs", "sent_at DESC, id DESC", page)
}

func (r *PgEmailLogRepository) List(ctx context.Context, page model.PageRequest) ([]*model.EmailLog, int, error) {
	return listPage(ctx, r.pool, EmailLogListQuery(page), scanEmailLog)
}

// Insert writes one log row and fills l.ID from the RETURNING clause.
func (r *PgEmailLogRepository) Insert(ctx context.Context, l *model.EmailLog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO email_logs (recipient_id, recipient_email, recipient_name, subject, body, status, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		l.RecipientID, l.RecipientEmail, l.RecipientName, l.Subject, l.Body, l.Status, l.SentAt,
	).Scan(&l.ID)
}
