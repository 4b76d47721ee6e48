package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/model"
	"github.com/studydesk/dashboard/internal/service"
)

// ProfileHandler serves user profiles under /api/profiles.
type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id/subscription", h.UpdateSubscription)
}

// List handles GET /api/profiles?page&pageSize&search&subscriptionStatus.
func (h *ProfileHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), model.ProfileListOptions{
		PageRequest:        pageRequest(c),
		SubscriptionStatus: c.Query("subscriptionStatus"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if p == nil {
		respondNotFound(c, service.ErrProfileNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateSubscription handles PATCH /api/profiles/:id/subscription.
// Keys other than the six subscription fields are ignored.
func (h *ProfileHandler) UpdateSubscription(c *gin.Context) {
	var u model.SubscriptionUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, model.ActionResult{Error: "invalid request body"})
		return
	}
	if err := h.svc.UpdateSubscription(c.Request.Context(), c.Param("id"), u); err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ActionResult{Success: true})
}
