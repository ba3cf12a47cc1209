// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/internal/coach"
	"github.com/neurobloom/coach-engine/pkg/types"
)

type coachHandler struct {
	engine *coach.Engine
	log    *zap.Logger
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ask answers one question. Malformed JSON is a 400; an empty question
// is still answered, with general guidance.
func (h *coachHandler) ask(c *gin.Context) {
	var req coach.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Question = strings.TrimSpace(req.Question)

	res, err := h.engine.Handle(c.Request.Context(), req)
	if err != nil {
		h.log.Error("answer pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate an answer"})
		return
	}
	c.JSON(http.StatusOK, res)
}

type topicInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// topics lists the supported topics in their canonical order.
func (h *coachHandler) topics(c *gin.Context) {
	vocab := types.TopicVocabulary()
	out := make([]topicInfo, 0, len(vocab))
	for _, t := range vocab {
		out = append(out, topicInfo{ID: string(t), Title: coach.TopicTitle(t)})
	}
	c.JSON(http.StatusOK, gin.H{"topics": out})
}
