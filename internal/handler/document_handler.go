package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/service"
)

// DocumentHandler serves uploaded documents under /api/documents.
type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(svc service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/types", h.Types)
	rg.GET("/recent", h.Recent)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/download", h.Download)
}

// List handles GET /api/documents?page&pageSize&search&type&userId.
func (h *DocumentHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), model.DocumentListOptions{
		PageRequest: pageRequest(c),
		Type:        c.Query("type"),
		UserID:      c.Query("userId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DocumentHandler) Types(c *gin.Context) {
	types, err := h.svc.Types(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *DocumentHandler) Recent(c *gin.Context) {
	docs, err := h.svc.Recent(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	d, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if d == nil {
		respondNotFound(c, service.ErrDocumentNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, d)
}

// Download handles GET /api/documents/:id/download. The body is always an ActionResult.
func (h *DocumentHandler) Download(c *gin.Context) {
	url, err := h.svc.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ActionResult{Success: true, URL: url})
}
