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

// AirlineController serves /api/v1/airlines.
type AirlineController struct {
	base
	upsertOnUpdate bool
}

func NewAirlineController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *AirlineController {
	return &AirlineController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

// airlineRow is the fixed projection returned by the list endpoints.
type airlineRow struct {
	Callsign string `json:"callsign"`
	Country  string `json:"country"`
	Iata     string `json:"iata"`
	Icao     string `json:"icao"`
	Name     string `json:"name"`
}

func toAirlineRow(a models.Airline) airlineRow {
	return airlineRow{
		Callsign: a.Callsign,
		Country:  a.Country,
		Iata:     a.Iata,
		Icao:     a.Icao,
		Name:     a.Name,
	}
}

// bindAirline accepts both {"airline": {...}} and the bare object.
func bindAirline(c *gin.Context) (models.Airline, error) {
	var body struct {
		models.Airline
		Wrapped *models.Airline `json:"airline"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Airline{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Airline, nil
}

// Get handles GET /api/v1/airlines/{id}
func (ac *AirlineController) Get(c *gin.Context) {
	id := c.Param("id")

	var airline models.Airline
	err := ac.store.Get(c.Request.Context(), store.KindAirline, id, &airline)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Airline with ID %s not found", id)})
	case err != nil:
		ac.internalError(c, "airline.get", err)
	default:
		c.JSON(http.StatusOK, airline)
	}
}

// Create handles POST /api/v1/airlines/{id}
func (ac *AirlineController) Create(c *gin.Context) {
	id := c.Param("id")

	airline, err := bindAirline(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.Airline
	err = ac.store.Get(c.Request.Context(), store.KindAirline, id, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Airline with ID %s already exists", id)})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		ac.internalError(c, "airline.create", err)
		return
	}

	if msgs := airline.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if err := ac.store.Insert(c.Request.Context(), store.KindAirline, id, airline); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Airline with ID %s already exists", id)})
			return
		}
		ac.internalError(c, "airline.create", err)
		return
	}

	c.JSON(http.StatusCreated, airline)
}

// Update handles PUT /api/v1/airlines/{id} with full-replace semantics.
func (ac *AirlineController) Update(c *gin.Context) {
	id := c.Param("id")

	airline, err := bindAirline(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if msgs := airline.Validate(); len(msgs) > 0 {
		badRequest(c, msgs)
		return
	}

	if !ac.upsertOnUpdate {
		var existing models.Airline
		err := ac.store.Get(c.Request.Context(), store.KindAirline, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Airline with ID %s not found", id)})
			return
		}
		if err != nil {
			ac.internalError(c, "airline.update", err)
			return
		}
	}

	if err := ac.store.Upsert(c.Request.Context(), store.KindAirline, id, airline); err != nil {
		ac.internalError(c, "airline.update", err)
		return
	}

	c.JSON(http.StatusOK, airline)
}

// Delete handles DELETE /api/v1/airlines/{id}
func (ac *AirlineController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := ac.store.Delete(c.Request.Context(), store.KindAirline, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Airline with ID %s not found", id)})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete airline"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Airline deleted successfully"})
	}
}

// List handles GET /api/v1/airlines/list with an optional country
// filter and limit/offset pagination.
func (ac *AirlineController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	filter := map[string]any{}
	if country := c.Query("country"); country != "" {
		filter["country"] = country
	}

	var airlines []models.Airline
	if err := ac.store.Query(c.Request.Context(), store.KindAirline, filter, limit, offset, &airlines); err != nil {
		ac.internalError(c, "airline.list", err)
		return
	}

	rows := make([]airlineRow, 0, len(airlines))
	for _, a := range airlines {
		rows = append(rows, toAirlineRow(a))
	}
	c.JSON(http.StatusOK, rows)
}

// ToAirport handles GET /api/v1/airlines/to-airport. The store has no
// cross-collection join, so this gathers the distinct airline ids of
// every route ending at the given airport, then resolves each id,
// silently skipping dangling references.
func (ac *AirlineController) ToAirport(c *gin.Context) {
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
	filter := map[string]any{"destinationairport": code}
	if err := ac.store.Query(c.Request.Context(), store.KindRoute, filter, 0, 0, &routes); err != nil {
		ac.internalError(c, "airline.to_airport", err)
		return
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(routes))
	for _, r := range routes {
		if _, dup := seen[r.Airlineid]; dup {
			continue
		}
		seen[r.Airlineid] = struct{}{}
		ids = append(ids, r.Airlineid)
	}

	rows := make([]airlineRow, 0, len(ids))
	for _, id := range ids {
		var airline models.Airline
		err := ac.store.Get(c.Request.Context(), store.KindAirline, id, &airline)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			ac.internalError(c, "airline.to_airport", err)
			return
		}
		rows = append(rows, toAirlineRow(airline))
	}

	c.JSON(http.StatusOK, paginate(rows, limit, offset))
}
