package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/studydesk/dashboard/internal/metrics"
	"go.uber.org/zap"
)

// FetchError is a failed read of entity from the record store.
// Its message never includes the cause.
type FetchError struct {
	Entity string
	Err    error
}

func (e *FetchError) Error() string { return "failed to fetch " + e.Entity }

func (e *FetchError) Unwrap() error { return e.Err }

// OperationError is a failed write or remote call surfaced with a fixed message.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return e.Err }

// ValidationError rejects input before any remote call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrNoDownloadURL    = errors.New("no download URL available for this document")
)

// fetchFailed logs a store read failure and wraps it as a FetchError.
func fetchFailed(log *zap.SugaredLogger, entity string, err error) error {
	log.Errorw("record store read failed", "entity", entity, "error", err)
	metrics.FetchFailures.WithLabelValues(entity).Inc()
	return &FetchError{Entity: entity, Err: err}
}

// operationFailed logs err and hides it behind msg.
func operationFailed(log *zap.SugaredLogger, msg string, err error, keysAndValues ...any) error {
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return &OperationError{Message: msg, Err: err}
}

// canonicalID parses id as a UUID and returns its canonical form.
// Lookups by anything else cannot match.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return u.String(), true
}
