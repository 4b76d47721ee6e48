package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studydesk/dashboard/internal/model"
)

// PgProfileRepository is the PostgreSQL implementation of ProfileRepository.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgProfileRepository returns a PostgreSQL-backed ProfileRepository.
func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

var _ ProfileRepository = (*PgProfileRepository)(nil)

const profileSelectCols = `id, email, full_name, username, school, major, grad_year, bio, avatar_url, age,
	subscription_status, subscription_tier, subscription_start_date, subscription_end_date,
	paddle_customer_id, paddle_subscription_id, subscription_id, created_at, updated_at`

var profileSearchCols = []string{"full_name", "username", "school", "major"}

var recipientSearchCols = []string{"full_name", "username", "email"}

func scanProfile(scan func(...any) error) (*model.Profile, error) {
	var p model.Profile
	if err := scan(&p.ID, &p.Email, &p.FullName, &p.Username, &p.School, &p.Major, &p.GradYear,
		&p.Bio, &p.AvatarURL, &p.Age,
		&p.SubscriptionStatus, &p.SubscriptionTier, &p.SubscriptionStartDate, &p.SubscriptionEndDate,
		&p.PaddleCustomerID, &p.PaddleSubscriptionID, &p.SubscriptionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanRecipient(scan func(...any) error) (*model.Recipient, error) {
	var r model.Recipient
	if err := scan(&r.ID, &r.FullName, &r.Username, &r.Email); err != nil {
		return nil, err
	}
	return &r, nil
}

// ProfileListQuery builds the list query for profiles.
func ProfileListQuery(opts model.ProfileListOptions) *ListQuery {
	return NewListQuery(profileSelectCols, "profiles", "created_at DESC, id DESC",
		opts.PageRequest, profileSearchCols...).
		Where("subscription_status", opts.SubscriptionStatus)
}

// List returns profiles ordered by created_at desc.
func (r *PgProfileRepository) List(ctx context.Context, opts model.ProfileListOptions) ([]*model.Profile, int, error) {
	return listPage(ctx, r.pool, ProfileListQuery(opts), scanProfile)
}

// FindByID returns ErrNotFound when no profile has this id.
func (r *PgProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileSelectCols+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row.Scan)
	return notFound(p, err)
}

// FindByEmail matches the address exactly.
func (r *PgProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileSelectCols+` FROM profiles WHERE email = $1 LIMIT 1`, email)
	p, err := scanProfile(row.Scan)
	return notFound(p, err)
}

// RecipientListQuery builds the recipient picker query: name ordered, no count.
func RecipientListQuery(search string, limit int) *ListQuery {
	return &ListQuery{
		Columns:       "id, full_name, username, email",
		From:          "profiles",
		SearchColumns: recipientSearchCols,
		Search:        search,
		OrderBy:       "full_name ASC NULLS LAST, id",
		Limit:         limit,
	}
}

// SearchRecipients returns up to limit profiles matching search by name, username or email.
func (r *PgProfileRepository) SearchRecipients(ctx context.Context, search string, limit int) ([]*model.Recipient, error) {
	return queryRows(ctx, r.pool, RecipientListQuery(search, limit), scanRecipient)
}

// UpdateSubscription writes only the subscription columns present in u, plus updated_at.
func (r *PgProfileRepository) UpdateSubscription(ctx context.Context, id string, u model.SubscriptionUpdate, at time.Time) error {
	sql, args := subscriptionUpdateSQL(id, u, at)
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// subscriptionUpdateSQL builds the UPDATE for u. The column set is fixed here;
// nothing from the request body names a column.
func subscriptionUpdateSQL(id string, u model.SubscriptionUpdate, at time.Time) (string, []any) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = "+placeholder(len(args)))
	}

	if u.Status != nil {
		set("subscription_status", *u.Status)
	}
	if u.Tier != nil {
		set("subscription_tier", *u.Tier)
	}
	if u.StartDate.Set {
		set("subscription_start_date", u.StartDate.Value())
	}
	if u.EndDate.Set {
		set("subscription_end_date", u.EndDate.Value())
	}
	if u.PaddleCustomerID != nil {
		set("paddle_customer_id", *u.PaddleCustomerID)
	}
	if u.PaddleSubscriptionID != nil {
		set("paddle_subscription_id", *u.PaddleSubscriptionID)
	}
	set("updated_at", at)

	args = append(args, id)
	return `UPDATE profiles SET ` + strings.Join(sets, ", ") + ` WHERE id = ` + placeholder(len(args)), args
}
