package model

import "time"

// Document is a study document uploaded by a user.
type Document struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Summary   *string    `json:"summary"`
	Content   *string    `json:"content"`
	FilePath  *string    `json:"file_path"`
	PublicURL *string    `json:"public_url"`
	Type      *string    `json:"type"`
	SubjectID *string    `json:"subject_id"`
	UserID    *string    `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	// UserName is resolved from the owning profile.
	UserName string `json:"user_name"`
}

// DocumentListOptions carries filter and pagination parameters for listing documents.
type DocumentListOptions struct {
	PageRequest
	// Type filters by document type. Empty string and "all" mean no filter.
	Type string
	// UserID restricts the list to one owner. Empty means no filter; a value
	// that is not a UUID matches no documents.
	UserID string
}

// Document types counted on the dashboard.
const (
	DocumentTypePDF   = "pdf"
	DocumentTypeImage = "image"
	DocumentTypeText  = "txt"
)

// DocumentStats are the document counters shown on the dashboard.
type DocumentStats struct {
	TotalDocuments int `json:"totalDocuments"`
	PDFDocuments   int `json:"pdfDocuments"`
	ImageDocuments int `json:"imageDocuments"`
	TextDocuments  int `json:"textDocuments"`
}
