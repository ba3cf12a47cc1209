// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the coach pipeline over HTTP.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/internal/coach"
)

// RouterConfig wires the HTTP surface.
type RouterConfig struct {
	Engine       *coach.Engine
	AllowOrigins []string
	Log          *zap.Logger
}

// NewRouter builds the gin router with CORS, a health endpoint, and the
// coach API group.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}))

	h := &coachHandler{engine: cfg.Engine, log: cfg.Log}

	router.GET("/healthcheck", healthCheck)
	api := router.Group("/api/coach")
	{
		api.POST("/ask", h.ask)
		api.GET("/topics", h.topics)
	}

	return router
}
