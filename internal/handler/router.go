package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	Logger      *zap.Logger
	FrontendURL string
	// RateLimit is applied to /api routes when set.
	RateLimit gin.HandlerFunc
	// Extra middleware applied to every route, in order.
	Middleware []gin.HandlerFunc
	Metrics    http.Handler

	Health    *HealthHandler
	Messages  *MessageHandler
	Documents *DocumentHandler
	Profiles  *ProfileHandler
	Email     *EmailHandler
}

// Engine builds the gin engine. Nil handlers are not mounted.
func (r Router) Engine() *gin.Engine {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := gin.New()
	e.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	e.Use(ginzap.RecoveryWithZap(logger, true))
	e.Use(cors.New(corsConfig(r.FrontendURL)))
	e.Use(r.Middleware...)

	if r.Health != nil {
		e.GET("/health", r.Health.Health)
	}
	if r.Metrics != nil {
		e.GET("/metrics", gin.WrapH(r.Metrics))
	}

	api := e.Group("/api")
	if r.RateLimit != nil {
		api.Use(r.RateLimit)
	}
	if r.Messages != nil {
		r.Messages.Register(api.Group("/messages"))
	}
	if r.Documents != nil {
		r.Documents.Register(api.Group("/documents"))
	}
	if r.Profiles != nil {
		r.Profiles.Register(api.Group("/profiles"))
	}
	if r.Email != nil {
		r.Email.Register(api.Group("/email"))
	}
	return e
}

func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if frontendURL == "" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = []string{frontendURL}
	}
	return cfg
}
