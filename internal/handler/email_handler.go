package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/service"
)

// EmailHandler serves email dispatch, logs and transport checks under /api/email.
type EmailHandler struct {
	svc service.EmailService
}

func NewEmailHandler(svc service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

func (h *EmailHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/logs", h.Logs)
	rg.GET("/templates", h.Templates)
	rg.GET("/recipients", h.Recipients)
	rg.POST("/send", h.Send)
	rg.POST("/config/test", h.TestConfig)
	rg.POST("/config/verify", h.VerifyConfig)
	rg.POST("/test", h.SendTest)
}

// Logs handles GET /api/email/logs?page&pageSize.
func (h *EmailHandler) Logs(c *gin.Context) {
	page, err := h.svc.Logs(c.Request.Context(), pageRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EmailHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Templates())
}

// Recipients handles GET /api/email/recipients?search.
func (h *EmailHandler) Recipients(c *gin.Context) {
	items, err := h.svc.Recipients(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Send handles POST /api/email/send.
func (h *EmailHandler) Send(c *gin.Context) {
	var req model.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ActionResult{Message: "invalid request body"})
		return
	}
	h.writeResult(c, func() (*model.ActionResult, error) { return h.svc.Send(c.Request.Context(), req) })
}

func (h *EmailHandler) TestConfig(c *gin.Context) {
	h.writeResult(c, func() (*model.ActionResult, error) { return h.svc.TestConfig(c.Request.Context()) })
}

// VerifyConfig handles POST /api/email/config/verify. The configuration is
// checked against the server and never stored.
func (h *EmailHandler) VerifyConfig(c *gin.Context) {
	var cfg mail.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, model.ActionResult{Message: "invalid request body"})
		return
	}
	h.writeResult(c, func() (*model.ActionResult, error) { return h.svc.VerifyConfig(c.Request.Context(), cfg) })
}

type testEmailRequest struct {
	Email string `json:"email"`
}

func (h *EmailHandler) SendTest(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ActionResult{Message: "invalid request body"})
		return
	}
	h.writeResult(c, func() (*model.ActionResult, error) { return h.svc.SendTestEmail(c.Request.Context(), req.Email) })
}

// writeResult writes {success, message}, including bad request bodies, so
// every email action has the dispatch result's shape. Message and profile
// writes answer {success, error} instead. Transport failures are 502.
func (h *EmailHandler) writeResult(c *gin.Context, call func() (*model.ActionResult, error)) {
	res, err := call()
	if err == nil {
		c.JSON(http.StatusOK, res)
		return
	}
	status := statusFor(err)
	var oe *service.OperationError
	if errors.As(err, &oe) {
		status = http.StatusBadGateway
	}
	c.JSON(status, model.ActionResult{Success: false, Message: publicMessage(err)})
}
