package model

import "time"

// Message statuses the dashboard knows about. Status is free text in the
// database, so other values are passed through unchanged.
const (
	MessageStatusPending  = "pending"
	MessageStatusResolved = "resolved"
)

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	UserID    *string    `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ContactListOptions carries filter and pagination parameters for listing contact messages.
type ContactListOptions struct {
	PageRequest
	// Status filters by message status. Empty string and "all" return all messages.
	Status string
}

// DashboardStats are the message counters shown on the dashboard landing page.
type DashboardStats struct {
	TotalMessages    int `json:"totalMessages"`
	NewMessages      int `json:"newMessages"`
	ResolvedMessages int `json:"resolvedMessages"`
	PendingMessages  int `json:"pendingMessages"`
}
