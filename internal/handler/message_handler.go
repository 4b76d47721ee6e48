package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/service"
)

// MessageHandler serves contact messages under /api/messages.
type MessageHandler struct {
	svc service.ContactService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(svc service.ContactService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Register mounts the message routes on rg.
func (h *MessageHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id/status", h.UpdateStatus)
}

// List handles GET /api/messages?page&pageSize&search&status.
func (h *MessageHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), model.ContactListOptions{
		PageRequest: pageRequest(c),
		Status:      c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MessageHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *MessageHandler) Get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if m == nil {
		respondNotFound(c, service.ErrMessageNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, m)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/messages/:id/status.
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ActionResult{Error: "invalid request body"})
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ActionResult{Success: true})
}
