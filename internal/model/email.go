package model

import "time"

// EmailStatusSent is the only status the dispatcher writes.
const EmailStatusSent = "sent"

// EmailLog is one audit row per recipient of a dispatched email.
type EmailLog struct {
	ID             string    `json:"id"`
	RecipientID    *string   `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	Status         string    `json:"status"`
	SentAt         time.Time `json:"sent_at"`
}

// DisplayName is the stored recipient name, else the address local part, else "Unknown".
func (l *EmailLog) DisplayName() string {
	if l.RecipientName != "" {
		return l.RecipientName
	}
	if local := LocalPart(l.RecipientEmail); local != "" {
		return local
	}
	return "Unknown"
}

// EmailTemplate is a predefined email. Body may contain {{placeholder}} tokens.
type EmailTemplate struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

// SendEmailRequest is the input of an email dispatch.
type SendEmailRequest struct {
	Recipients     []string `json:"recipients"`
	Subject        string   `json:"subject"`
	Body           string   `json:"body"`
	SaveAsTemplate bool     `json:"saveAsTemplate"`
	TemplateName   string   `json:"templateName"`
}

// ActionResult is the structured outcome returned by write and download endpoints.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}
