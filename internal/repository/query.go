package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studydesk/dashboard/internal/model"
)

// Filter is an exact-match predicate on one column.
type Filter struct {
	Column string
	Value  any
}

// ListQuery describes a filtered, searched and paginated read of one table.
// Count and data statements are built from the same WHERE clause.
type ListQuery struct {
	// Columns is the select list; From may contain joins.
	Columns string
	From    string

	// SearchColumns are OR-ed together with a case-insensitive substring match.
	SearchColumns []string
	Search        string

	Filters []Filter

	// OrderBy is the full ORDER BY expression, e.g. "created_at DESC, id DESC".
	OrderBy string
	Limit   int
	Offset  int
}

// NewListQuery builds a ListQuery for the given page.
func NewListQuery(columns, from, orderBy string, page model.PageRequest, searchColumns ...string) *ListQuery {
	page = page.Normalize()
	from0, _ := page.Range()
	return &ListQuery{
		Columns:       columns,
		From:          from,
		SearchColumns: searchColumns,
		Search:        page.Search,
		OrderBy:       orderBy,
		Limit:         page.PageSize,
		Offset:        from0,
	}
}

// Where adds an exact-match filter unless value is "" or "all".
func (q *ListQuery) Where(column, value string) *ListQuery {
	if model.IsUnfiltered(value) {
		return q
	}
	q.Filters = append(q.Filters, Filter{Column: column, Value: strings.TrimSpace(value)})
	return q
}

func (q *ListQuery) where() (string, []any) {
	var conditions []string
	var args []any

	if s := strings.TrimSpace(q.Search); s != "" && len(q.SearchColumns) > 0 {
		args = append(args, "%"+escapeLike(s)+"%")
		n := placeholder(len(args))
		matches := make([]string, len(q.SearchColumns))
		for i, col := range q.SearchColumns {
			matches[i] = col + " ILIKE " + n
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	for _, f := range q.Filters {
		args = append(args, f.Value)
		conditions = append(conditions, f.Column+" = "+placeholder(len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CountSQL returns the statement counting every matching row.
func (q *ListQuery) CountSQL() (string, []any) {
	where, args := q.where()
	return "SELECT count(*) FROM " + q.From + where, args
}

// DataSQL returns the statement selecting the page window.
func (q *ListQuery) DataSQL() (string, []any) {
	where, args := q.where()
	sql := "SELECT " + q.Columns + " FROM " + q.From + where
	if q.OrderBy != "" {
		sql += " ORDER BY " + q.OrderBy
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += " LIMIT " + placeholder(len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		sql += " OFFSET " + placeholder(len(args))
	}
	return sql, args
}

// escapeLike makes LIKE metacharacters in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// readSnapshot runs count and data in one snapshot so they cannot drift.
var readSnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// listPage runs q and returns the page rows plus the total match count.
func listPage[T any](ctx context.Context, pool *pgxpool.Pool, q *ListQuery, scan func(func(...any) error) (T, error)) ([]T, int, error) {
	var (
		items []T
		total int64
	)
	err := pgx.BeginTxFunc(ctx, pool, readSnapshot, func(tx pgx.Tx) error {
		countSQL, countArgs := q.CountSQL()
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return err
		}
		var err error
		items, err = queryRows(ctx, tx, q, scan)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryRows runs only the data statement of q.
func queryRows[T any](ctx context.Context, db querier, q *ListQuery, scan func(func(...any) error) (T, error)) ([]T, error) {
	dataSQL, args := q.DataSQL()
	rows, err := db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
