package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_api/internal/metrics"
	"travel_api/internal/models"
	"travel_api/internal/store"
)

// RouteController serves /api/v1/routes.
type RouteController struct {
	base
	upsertOnUpdate bool
}

func NewRouteController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *RouteController {
	return &RouteController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindRoute(c *gin.Context) (models.Route, error) {
	var body struct {
		models.Route
		Wrapped *models.Route `json:"route"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Route{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Route, nil
}

// Get handles GET /api/v1/routes/{id}
func (rc *RouteController) Get(c *gin.Context) {
	id := c.Param("id")

	var route models.Route
	err := rc.store.Get(c.Request.Context(), store.KindRoute, id, &route)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Route with ID %s not found", id)})
	case err != nil:
		rc.internalError(c, "route.get", err)
	default:
		c.JSON(http.StatusOK, route)
	}
}

// Create handles POST /api/v1/routes/{id}
func (rc *RouteController) Create(c *gin.Context) {
	id := c.Param("id")

	route, err := bindRoute(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.Route
	err = rc.store.Get(c.Request.Context(), store.KindRoute, id, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Route with ID %s already exists", id)})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		rc.internalError(c, "route.create", err)
		return
	}

	if msgs := route.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if err := rc.store.Insert(c.Request.Context(), store.KindRoute, id, route); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Route with ID %s already exists", id)})
			return
		}
		rc.internalError(c, "route.create", err)
		return
	}

	c.JSON(http.StatusCreated, route)
}

// Update handles PUT /api/v1/routes/{id}. Routes do not auto-create on
// update by default; a missing id is a 404.
func (rc *RouteController) Update(c *gin.Context) {
	id := c.Param("id")

	route, err := bindRoute(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if msgs := route.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if !rc.upsertOnUpdate {
		var existing models.Route
		err := rc.store.Get(c.Request.Context(), store.KindRoute, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Route with ID %s not found", id)})
			return
		}
		if err != nil {
			rc.internalError(c, "route.update", err)
			return
		}
	}

	if err := rc.store.Upsert(c.Request.Context(), store.KindRoute, id, route); err != nil {
		rc.internalError(c, "route.update", err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// Delete handles DELETE /api/v1/routes/{id}
func (rc *RouteController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := rc.store.Delete(c.Request.Context(), store.KindRoute, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Route with ID %s not found", id)})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete route"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Route deleted successfully"})
	}
}
