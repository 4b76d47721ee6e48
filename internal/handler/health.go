package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/repository"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler reports whether the record store is reachable.
type HealthHandler struct {
	db repository.DB
}

func NewHealthHandler(db repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Message: "Dashboard API"})
}
