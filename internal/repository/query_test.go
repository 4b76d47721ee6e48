package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studydesk/dashboard/internal/model"
)

func TestListQuery_NoFilters(t *testing.T) {
	q := NewListQuery("id", "contact_messages", "created_at DESC", model.PageRequest{})

	countSQL, countArgs := q.CountSQL()
	assert.Equal(t, "SELECT count(*) FROM contact_messages", countSQL)
	assert.Empty(t, countArgs)

	dataSQL, dataArgs := q.DataSQL()
	assert.Equal(t, "SELECT id FROM contact_messages ORDER BY created_at DESC LIMIT $1", dataSQL)
	assert.Equal(t, []any{model.DefaultPageSize}, dataArgs)
}

func TestListQuery_SearchAndFilter(t *testing.T) {
	opts := model.ContactListOptions{
		PageRequest: model.PageRequest{Page: 3, PageSize: 20, Search: "  alice "},
		Status:      "pending",
	}
	q := ContactListQuery(opts)

	countSQL, countArgs := q.CountSQL()
	assert.Equal(t,
		"SELECT count(*) FROM contact_messages WHERE (name ILIKE $1 OR email ILIKE $1 OR subject ILIKE $1) AND status = $2",
		countSQL)
	assert.Equal(t, []any{"%alice%", "pending"}, countArgs)

	dataSQL, dataArgs := q.DataSQL()
	assert.Contains(t, dataSQL, " WHERE (name ILIKE $1 OR email ILIKE $1 OR subject ILIKE $1) AND status = $2")
	assert.Contains(t, dataSQL, " ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"%alice%", "pending", 20, 40}, dataArgs)
}

func TestListQuery_AllSentinelMatchesNoFilter(t *testing.T) {
	page := model.PageRequest{Page: 1, PageSize: 10}
	for _, status := range []string{"", "all", " all "} {
		q := ContactListQuery(model.ContactListOptions{PageRequest: page, Status: status})
		base := ContactListQuery(model.ContactListOptions{PageRequest: page})

		gotSQL, gotArgs := q.DataSQL()
		wantSQL, wantArgs := base.DataSQL()
		assert.Equal(t, wantSQL, gotSQL, "status %q", status)
		assert.Equal(t, wantArgs, gotArgs, "status %q", status)
	}
}

func TestListQuery_PageSizeCapped(t *testing.T) {
	q := NewListQuery("id", "profiles", "created_at DESC", model.PageRequest{Page: 2, PageSize: 5000})
	assert.Equal(t, model.MaxPageSize, q.Limit)
	assert.Equal(t, model.MaxPageSize, q.Offset)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `first\_name`, escapeLike("first_name"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))

	q := NewListQuery("id", "documents", "", model.PageRequest{Search: "100%"}, "title")
	_, args := q.CountSQL()
	require.Len(t, args, 1)
	assert.Equal(t, `%100\%%`, args[0])
}

func TestDocumentListQuery_JoinAndFilters(t *testing.T) {
	q := DocumentListQuery(model.DocumentListOptions{
		PageRequest: model.PageRequest{Search: "calc"},
		Type:        "pdf",
		UserID:      "user-1",
	})

	countSQL, args := q.CountSQL()
	assert.Equal(t,
		"SELECT count(*) FROM documents d LEFT JOIN profiles p ON p.id = d.user_id"+
			" WHERE (d.title ILIKE $1 OR d.summary ILIKE $1) AND d.type = $2 AND d.user_id = $3",
		countSQL)
	assert.Equal(t, []any{"%calc%", "pdf", "user-1"}, args)
}

func TestDocumentListQuery_AllTypeIgnored(t *testing.T) {
	q := DocumentListQuery(model.DocumentListOptions{Type: "all"})
	countSQL, args := q.CountSQL()
	assert.NotContains(t, countSQL, "WHERE")
	assert.Empty(t, args)
}

func TestProfileListQuery_SubscriptionFilter(t *testing.T) {
	q := ProfileListQuery(model.ProfileListOptions{SubscriptionStatus: "active"})
	countSQL, args := q.CountSQL()
	assert.Equal(t, "SELECT count(*) FROM profiles WHERE subscription_status = $1", countSQL)
	assert.Equal(t, []any{"active"}, args)
}

func TestEmailLogListQuery_IgnoresSearch(t *testing.T) {
	q := EmailLogListQuery(model.PageRequest{Page: 2, PageSize: 10, Search: "bob"})

	dataSQL, args := q.DataSQL()
	assert.NotContains(t, dataSQL, "ILIKE")
	assert.Contains(t, dataSQL, "ORDER BY sent_at DESC, id DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 10}, args)
}

func TestRecipientListQuery(t *testing.T) {
	q := RecipientListQuery("ann", 100)

	dataSQL, args := q.DataSQL()
	assert.Equal(t,
		"SELECT id, full_name, username, email FROM profiles"+
			" WHERE (full_name ILIKE $1 OR username ILIKE $1 OR email ILIKE $1)"+
			" ORDER BY full_name ASC NULLS LAST, id LIMIT $2",
		dataSQL)
	assert.Equal(t, []any{"%ann%", 100}, args)
}

func TestSubscriptionUpdateSQL(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	status := "active"
	tier := "pro"

	t.Run("only present fields are written", func(t *testing.T) {
		sql, args := subscriptionUpdateSQL("p-1", model.SubscriptionUpdate{Status: &status, Tier: &tier}, at)
		assert.Equal(t,
			"UPDATE profiles SET subscription_status = $1, subscription_tier = $2, updated_at = $3 WHERE id = $4",
			sql)
		assert.Equal(t, []any{"active", "pro", at, "p-1"}, args)
	})

	t.Run("cleared date is written as NULL", func(t *testing.T) {
		u := model.SubscriptionUpdate{EndDate: model.NullableTime{Set: true}}
		sql, args := subscriptionUpdateSQL("p-2", u, at)
		assert.Equal(t, "UPDATE profiles SET subscription_end_date = $1, updated_at = $2 WHERE id = $3", sql)
		require.Len(t, args, 3)
		assert.Nil(t, args[0])
	})

	t.Run("empty update still stamps updated_at", func(t *testing.T) {
		sql, args := subscriptionUpdateSQL("p-3", model.SubscriptionUpdate{}, at)
		assert.Equal(t, "UPDATE profiles SET updated_at = $1 WHERE id = $2", sql)
		assert.Equal(t, []any{at, "p-3"}, args)
	})
}
