package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studydesk/dashboard/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(subject, ''),
	COALESCE(message, ''), COALESCE(status, ''), user_id, created_at, updated_at`

// contactSearchCols are matched by the free-text search box.
var contactSearchCols = []string{"name", "email", "subject"}

func scanContact(scan func(...any) error) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.UserID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// ContactListQuery builds the list query for contact messages.
func ContactListQuery(opts model.ContactListOptions) *ListQuery {
	return NewListQuery(contactSelectCols, "contact_messages", "created_at DESC, id DESC",
		opts.PageRequest, contactSearchCols...).
		Where("status", opts.Status)
}

// List returns one page of contact messages and the total match count.
// Status "" or "all" returns all messages.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error) {
	return listPage(ctx, r.pool, ContactListQuery(opts), scanContact)
}

// FindByID returns ErrNotFound when no row matches.
func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contactSelectCols+` FROM contact_messages WHERE id = $1`, id)
	m, err := scanContact(row.Scan)
	return notFound(m, err)
}

// UpdateStatus changes the status of a message and stamps updated_at.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $1, updated_at = $2 WHERE id = $3`,
		status, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts all, recent, resolved and pending messages in one statement.
func (r *PgContactRepository) Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error) {
	var total, recent, resolved, pending int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE created_at >= $1),
		        count(*) FILTER (WHERE status = $2),
		        count(*) FILTER (WHERE status = $3)
		 FROM contact_messages`,
		since, model.MessageStatusResolved, model.MessageStatusPending,
	).Scan(&total, &recent, &resolved, &pending)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStats{
		TotalMessages:    int(total),
		NewMessages:      int(recent),
		ResolvedMessages: int(resolved),
		PendingMessages:  int(pending),
	}, nil
}
