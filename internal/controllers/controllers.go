package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel_api/internal/metrics"
	"travel_api/internal/store"
)

// Pagination defaults applied when the caller omits limit/offset.
const (
	defaultLimit  = 10
	defaultOffset = 0
)

// base carries the dependencies every resource controller needs. The
// store handle is constructed in main and passed down; nothing here is
// package-global.
type base struct {
	store   store.Store
	metrics *metrics.Metrics
}

// internalError hides the store failure from the caller and reports it
// at the boundary.
func (b base) internalError(c *gin.Context, operation string, err error) {
	logrus.WithError(err).WithField("operation", operation).Error("store operation failed")
	if b.metrics != nil {
		b.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func badRequest(c *gin.Context, message any) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": message})
}

// listParams parses limit/offset with the documented defaults. A
// malformed value is a bad request; ok is false once the response has
// been written.
func listParams(c *gin.Context) (limit, offset int, ok bool) {
	limit, ok = intQuery(c, "limit", defaultLimit)
	if !ok {
		return
	}
	offset, ok = intQuery(c, "offset", defaultOffset)
	return
}

func intQuery(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}

// paginate applies offset then limit to a slice that was resolved in
// application logic rather than by the store.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
