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

// AirportController serves /api/v1/airports.
type AirportController struct {
	base
	upsertOnUpdate bool
}

func NewAirportController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *AirportController {
	return &AirportController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindAirport(c *gin.Context) (models.Airport, error) {
	var body struct {
		models.Airport
		Wrapped *models.Airport `json:"airport"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Airport{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Airport, nil
}

// Get handles GET /api/v1/airports/{id}
func (ac *AirportController) Get(c *gin.Context) {
	id := c.Param("id")

	var airport models.Airport
	err := ac.store.Get(c.Request.Context(), store.KindAirport, id, &airport)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Airport with ID %s not found", id)})
	case err != nil:
		ac.internalError(c, "airport.get", err)
	default:
		c.JSON(http.StatusOK, airport)
	}
}

// Create handles POST /api/v1/airports/{id}
func (ac *AirportController) Create(c *gin.Context) {
	id := c.Param("id")

	airport, err := bindAirport(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.Airport
	err = ac.store.Get(c.Request.Context(), store.KindAirport, id, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Airport with ID %s already exists", id)})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		ac.internalError(c, "airport.create", err)
		return
	}

	if msgs := airport.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if err := ac.store.Insert(c.Request.Context(), store.KindAirport, id, airport); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Airport with ID %s already exists", id)})
			return
		}
		ac.internalError(c, "airport.create", err)
		return
	}

	c.JSON(http.StatusCreated, airport)
}

// Update handles PUT /api/v1/airports/{id}
func (ac *AirportController) Update(c *gin.Context) {
	id := c.Param("id")

	airport, err := bindAirport(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if msgs := airport.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if !ac.upsertOnUpdate {
		var existing models.Airport
		err := ac.store.Get(c.Request.Context(), store.KindAirport, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Airport with ID %s not found", id)})
			return
		}
		if err != nil {
			ac.internalError(c, "airport.update", err)
			return
		}
	}

	if err := ac.store.Upsert(c.Request.Context(), store.KindAirport, id, airport); err != nil {
		ac.internalError(c, "airport.update", err)
		return
	}

	c.JSON(http.StatusOK, airport)
}

// Delete handles DELETE /api/v1/airports/{id}
func (ac *AirportController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := ac.store.Delete(c.Request.Context(), store.KindAirport, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Airport with ID %s not found", id)})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete airport"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Airport deleted successfully"})
	}
}

// List handles GET /api/v1/airports/list
func (ac *AirportController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	filter := map[string]any{}
	if country := c.Query("country"); country != "" {
		filter["country"] = country
	}

	var airports []models.Airport
	if err := ac.store.Query(c.Request.Context(), store.KindAirport, filter, limit, offset, &airports); err != nil {
		ac.internalError(c, "airport.list", err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

// DirectConnections handles GET /api/v1/airports/direct-connections:
// the distinct airports reachable nonstop from the given code.
func (ac *AirportController) DirectConnections(c *gin.Context) {
	code := c.Query("destinationAirportCode")
	if code == "" {
		badRequest(c, "Destination airport is missing")
		return
	}

	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	var routes []models.Route
	filter := map[string]any{"sourceairport": code, "stops": 0}
	if err := ac.store.Query(c.Request.Context(), store.KindRoute, filter, 0, 0, &routes); err != nil {
		ac.internalError(c, "airport.direct_connections", err)
		return
	}

	seen := make(map[string]struct{})
	codes := make([]string, 0, len(routes))
	for _, r := range routes {
		if _, dup := seen[r.Destinationairport]; dup {
			continue
		}
		seen[r.Destinationairport] = struct{}{}
		codes = append(codes, r.Destinationairport)
	}

	c.JSON(http.StatusOK, paginate(codes, limit, offset))
}
