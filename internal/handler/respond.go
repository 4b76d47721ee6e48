package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/service"
)

// APIError is the error body of read endpoints.
type APIError struct {
	Error string `json:"error"`
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrNoDownloadURL):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the text a client may see for err. Typed service errors
// carry fixed messages; anything else is hidden.
func publicMessage(err error) string {
	var (
		ve *service.ValidationError
		fe *service.FetchError
		oe *service.OperationError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &fe), errors.As(err, &oe),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrNoDownloadURL):
		return err.Error()
	default:
		return "internal server error"
	}
}

// respondError writes {"error": ...} for a failed read.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), APIError{Error: publicMessage(err)})
}

// respondNotFound writes a 404 with a simple message.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, APIError{Error: message})
}

// respondActionError writes {success:false, error} for a failed write.
func respondActionError(c *gin.Context, err error) {
	c.JSON(statusFor(err), model.ActionResult{Success: false, Error: publicMessage(err)})
}
