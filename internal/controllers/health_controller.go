package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel_api/internal/store"
)

// HealthController reports whether the document store is reachable.
type HealthController struct {
	store store.Store
}

func NewHealthController(s store.Store) *HealthController {
	return &HealthController{store: s}
}

// Show handles GET /health
func (hc *HealthController) Show(c *gin.Context) {
	storeStatus := gin.H{"status": "up", "message": "store reachable"}
	status := "healthy"
	code := http.StatusOK

	if err := hc.store.Ping(c.Request.Context()); err != nil {
		storeStatus = gin.H{"status": "down", "message": err.Error()}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  gin.H{"store": storeStatus},
	})
}
