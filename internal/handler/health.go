package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/capability"
)

type HealthHandler struct {
	gen    capability.TextGenerator
	search capability.WebSearcher
}

func NewHealthHandler(gen capability.TextGenerator, search capability.WebSearcher) *HealthHandler {
	return &HealthHandler{gen: gen, search: search}
}

// GET /api/health
//
// Reports liveness plus whether the optional generation providers have
// credentials configured. Diagnostic only; generation works either way.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"ai_services": gin.H{
			"text_generation": h.gen.Configured(),
			"web_search":      h.search.Configured(),
		},
	})
}
