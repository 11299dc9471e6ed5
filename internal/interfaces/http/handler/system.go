package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
