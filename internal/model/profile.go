package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Profile is a user profile of the consumer application.
type Profile struct {
	ID                    string     `json:"id"`
	Email                 *string    `json:"email"`
	FullName              *string    `json:"full_name"`
	Username              *string    `json:"username"`
	School                *string    `json:"school"`
	Major                 *string    `json:"major"`
	GradYear              *string    `json:"grad_year"`
	Bio                   *string    `json:"bio"`
	AvatarURL             *string    `json:"avatar_url"`
	Age                   *int       `json:"age"`
	SubscriptionStatus    *string    `json:"subscription_status"`
	SubscriptionTier      *string    `json:"subscription_tier"`
	SubscriptionStartDate *time.Time `json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time `json:"subscription_end_date"`
	PaddleCustomerID      *string    `json:"paddle_customer_id"`
	PaddleSubscriptionID  *string    `json:"paddle_subscription_id"`
	SubscriptionID        *string    `json:"subscription_id"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

// ProfileListOptions carries filter and pagination parameters for listing profiles.
type ProfileListOptions struct {
	PageRequest
	SubscriptionStatus string
}

// Recipient is the trimmed profile shape used by the email recipient picker.
type Recipient struct {
	ID       string  `json:"id"`
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UnknownUser is shown when an owner reference cannot be resolved to a name.
const UnknownUser = "Unknown User"

// OwnerDisplayName picks full name, then username, then UnknownUser.
func OwnerDisplayName(fullName, username *string) string {
	if s := deref(fullName); s != "" {
		return s
	}
	if s := deref(username); s != "" {
		return s
	}
	return UnknownUser
}

// RecipientName picks the profile's full name, then username, then the local
// part of the address. p may be nil.
func RecipientName(p *Profile, address string) string {
	if p != nil {
		if s := deref(p.FullName); s != "" {
			return s
		}
		if s := deref(p.Username); s != "" {
			return s
		}
	}
	return LocalPart(address)
}

// LocalPart returns the part of an address before '@'.
func LocalPart(address string) string {
	local, _, _ := strings.Cut(address, "@")
	return local
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SubscriptionUpdate is a partial update of the subscription fields of a
// profile. A nil field is left untouched.
type SubscriptionUpdate struct {
	Status               *string      `json:"subscription_status"`
	Tier                 *string      `json:"subscription_tier"`
	StartDate            NullableTime `json:"subscription_start_date"`
	EndDate              NullableTime `json:"subscription_end_date"`
	PaddleCustomerID     *string      `json:"paddle_customer_id"`
	PaddleSubscriptionID *string      `json:"paddle_subscription_id"`
}

// NullableTime tells an absent JSON field apart from an explicit null.
type NullableTime struct {
	Set   bool
	Valid bool
	Time  time.Time
}

// dateLayouts are accepted for subscription dates; the dashboard form sends plain dates.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Valid = false
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		n.Valid = false
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			n.Valid = true
			n.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Value returns the value to store: nil for a cleared date.
func (n NullableTime) Value() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
