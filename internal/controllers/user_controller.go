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

// Fixed deltas applied by the points endpoints.
const (
	pointsIncrement = 10
	pointsDecrement = 5
)

// UserController serves /api/v1/users.
type UserController struct {
	base
	upsertOnUpdate bool
}

func NewUserController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *UserController {
	return &UserController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindUser(c *gin.Context) (models.User, error) {
	var body struct {
		models.User
		Wrapped *models.User `json:"user"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.User{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.User, nil
}

// Get handles GET /api/v1/users/{id}
func (uc *UserController) Get(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	err := uc.store.Get(c.Request.Context(), store.KindUser, id, &user)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		uc.internalError(c, "user.get", err)
	default:
		c.JSON(http.StatusOK, user)
	}
}

// Create handles POST /api/v1/users/{id}. Points always starts at 0.
func (uc *UserController) Create(c *gin.Context) {
	id := c.Param("id")

	user, err := bindUser(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	user.Points = 0

	var existing models.User
	err = uc.store.Get(c.Request.Context(), store.KindUser, id, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("User with ID %s already exists", id)})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		uc.internalError(c, "user.create", err)
		return
	}

	if msgs := user.Validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create user", "message": msgs})
		return
	}

	if err := uc.store.Insert(c.Request.Context(), store.KindUser, id, user); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("User with ID %s already exists", id)})
			return
		}
		uc.internalError(c, "user.create", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/v1/users/{id}. Users do not auto-create on
// update by default.
func (uc *UserController) Update(c *gin.Context) {
	id := c.Param("id")

	user, err := bindUser(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if msgs := user.Validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update user", "message": msgs})
		return
	}

	if !uc.upsertOnUpdate {
		var existing models.User
		err := uc.store.Get(c.Request.Context(), store.KindUser, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			uc.internalError(c, "user.update", err)
			return
		}
		user.Points = existing.Points
	}

	if err := uc.store.Upsert(c.Request.Context(), store.KindUser, id, user); err != nil {
		uc.internalError(c, "user.update", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/v1/users/{id}
func (uc *UserController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := uc.store.Delete(c.Request.Context(), store.KindUser, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete user"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "User deleted successfully"})
	}
}

// List handles GET /api/v1/users/list
func (uc *UserController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	var users []models.User
	if err := uc.store.Query(c.Request.Context(), store.KindUser, nil, limit, offset, &users); err != nil {
		uc.internalError(c, "user.list", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IncrementPoints handles POST /api/v1/users/{id}/increment_points
func (uc *UserController) IncrementPoints(c *gin.Context) {
	uc.adjustPoints(c, pointsIncrement)
}

// DecrementPoints handles POST /api/v1/users/{id}/decrement_points
func (uc *UserController) DecrementPoints(c *gin.Context) {
	uc.adjustPoints(c, -pointsDecrement)
}

func (uc *UserController) adjustPoints(c *gin.Context, delta int) {
	id := c.Param("id")

	var user models.User
	err := uc.store.Get(c.Request.Context(), store.KindUser, id, &user)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		uc.internalError(c, "user.adjust_points", err)
		return
	}

	user.Points += delta
	if err := uc.store.Upsert(c.Request.Context(), store.KindUser, id, user); err != nil {
		uc.internalError(c, "user.adjust_points", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
