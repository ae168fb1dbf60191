package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel_api/internal/metrics"
	"travel_api/internal/models"
	"travel_api/internal/store"
)

// HotelController serves /api/v1/hotels. Hotels carry no field rules
// beyond shape; the handler maintains the created_at/updated_at stamps
// on every write.
type HotelController struct {
	base
	upsertOnUpdate bool
}

func NewHotelController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *HotelController {
	return &HotelController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindHotel(c *gin.Context) (models.Hotel, error) {
	var body struct {
		models.Hotel
		Wrapped *models.Hotel `json:"hotel"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Hotel{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Hotel, nil
}

// Get handles GET /api/v1/hotels/{id}
func (hc *HotelController) Get(c *gin.Context) {
	id := c.Param("id")

	var hotel models.Hotel
	err := hc.store.Get(c.Request.Context(), store.KindHotel, id, &hotel)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Hotel with ID %s not found", id)})
	case err != nil:
		hc.internalError(c, "hotel.get", err)
	default:
		c.JSON(http.StatusOK, hotel)
	}
}

// Create handles POST /api/v1/hotels/{id}
func (hc *HotelController) Create(c *gin.Context) {
	id := c.Param("id")

	hotel, err := bindHotel(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.Hotel
	err = hc.store.Get(c.Request.Context(), store.KindHotel, id, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Hotel with ID %s already exists", id)})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		hc.internalError(c, "hotel.create", err)
		return
	}

	now := time.Now().UTC()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if err := hc.store.Insert(c.Request.Context(), store.KindHotel, id, hotel); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Hotel with ID %s already exists", id)})
			return
		}
		hc.internalError(c, "hotel.create", err)
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

// Update handles PUT /api/v1/hotels/{id}. The created_at stamp of an
// existing document survives the full replace.
func (hc *HotelController) Update(c *gin.Context) {
	id := c.Param("id")

	hotel, err := bindHotel(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	now := time.Now().UTC()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	var existing models.Hotel
	err = hc.store.Get(c.Request.Context(), store.KindHotel, id, &existing)
	switch {
	case err == nil:
		hotel.CreatedAt = existing.CreatedAt
	case errors.Is(err, store.ErrNotFound):
		if !hc.upsertOnUpdate {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Hotel with ID %s not found", id)})
			return
		}
	default:
		hc.internalError(c, "hotel.update", err)
		return
	}

	if err := hc.store.Upsert(c.Request.Context(), store.KindHotel, id, hotel); err != nil {
		hc.internalError(c, "hotel.update", err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /api/v1/hotels/{id}
func (hc *HotelController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := hc.store.Delete(c.Request.Context(), store.KindHotel, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Hotel with ID %s not found", id)})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete hotel"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Hotel deleted successfully"})
	}
}

// List handles GET /api/v1/hotels/list with optional country and city
// filters.
func (hc *HotelController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	filter := map[string]any{}
	if country := c.Query("country"); country != "" {
		filter["country"] = country
	}
	if city := c.Query("city"); city != "" {
		filter["city"] = city
	}

	var hotels []models.Hotel
	if err := hc.store.Query(c.Request.Context(), store.KindHotel, filter, limit, offset, &hotels); err != nil {
		hc.internalError(c, "hotel.list", err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}
