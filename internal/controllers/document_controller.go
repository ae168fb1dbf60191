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

// DocumentController serves /api/v1/documents.
type DocumentController struct {
	base
	upsertOnUpdate bool
}

func NewDocumentController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *DocumentController {
	return &DocumentController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindDocument(c *gin.Context) (models.Document, error) {
	var body struct {
		models.Document
		Wrapped *models.Document `json:"document"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Document{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Document, nil
}

// Get handles GET /api/v1/documents/{id}
func (dc *DocumentController) Get(c *gin.Context) {
	id := c.Param("id")

	var doc models.Document
	err := dc.store.Get(c.Request.Context(), store.KindDocument, id, &doc)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case err != nil:
		dc.internalError(c, "document.get", err)
	default:
		c.JSON(http.StatusOK, doc)
	}
}

// Create handles POST /api/v1/documents/{id}
func (dc *DocumentController) Create(c *gin.Context) {
	id := c.Param("id")

	doc, err := bindDocument(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := dc.store.Insert(c.Request.Context(), store.KindDocument, id, doc); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Document with ID %s already exists", id)})
			return
		}
		dc.internalError(c, "document.create", err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Update handles PUT /api/v1/documents/{id}
func (dc *DocumentController) Update(c *gin.Context) {
	id := c.Param("id")

	doc, err := bindDocument(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	doc.UpdatedAt = time.Now().UTC()

	if !dc.upsertOnUpdate {
		var existing models.Document
		err := dc.store.Get(c.Request.Context(), store.KindDocument, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		if err != nil {
			dc.internalError(c, "document.update", err)
			return
		}
	}

	if err := dc.store.Upsert(c.Request.Context(), store.KindDocument, id, doc); err != nil {
		dc.internalError(c, "document.update", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/v1/documents/{id}
func (dc *DocumentController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := dc.store.Delete(c.Request.Context(), store.KindDocument, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete document"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Document deleted successfully"})
	}
}

// List handles GET /api/v1/documents/list
func (dc *DocumentController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	var docs []models.Document
	if err := dc.store.Query(c.Request.Context(), store.KindDocument, nil, limit, offset, &docs); err != nil {
		dc.internalError(c, "document.list", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Touch handles POST /api/v1/documents/{id}/touch_document: the
// updated_at stamp is refreshed, the content is left alone.
func (dc *DocumentController) Touch(c *gin.Context) {
	id := c.Param("id")

	var doc models.Document
	err := dc.store.Get(c.Request.Context(), store.KindDocument, id, &doc)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if err != nil {
		dc.internalError(c, "document.touch", err)
		return
	}

	doc.UpdatedAt = time.Now().UTC()
	if err := dc.store.Upsert(c.Request.Context(), store.KindDocument, id, doc); err != nil {
		dc.internalError(c, "document.touch", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
