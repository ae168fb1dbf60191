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

// Text concatenated when an append/prepend request carries no body.
const (
	defaultAppendText  = " additional text"
	defaultPrependText = "additional text "
)

// PostController serves /api/v1/posts.
type PostController struct {
	base
	upsertOnUpdate bool
}

func NewPostController(s store.Store, m *metrics.Metrics, upsertOnUpdate bool) *PostController {
	return &PostController{base: base{store: s, metrics: m}, upsertOnUpdate: upsertOnUpdate}
}

func bindPost(c *gin.Context) (models.Post, error) {
	var body struct {
		models.Post
		Wrapped *models.Post `json:"post"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return models.Post{}, err
	}
	if body.Wrapped != nil {
		return *body.Wrapped, nil
	}
	return body.Post, nil
}

// Get handles GET /api/v1/posts/{id}
func (pc *PostController) Get(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	err := pc.store.Get(c.Request.Context(), store.KindPost, id, &post)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case err != nil:
		pc.internalError(c, "post.get", err)
	default:
		c.JSON(http.StatusOK, post)
	}
}

// Create handles POST /api/v1/posts/{id}
func (pc *PostController) Create(c *gin.Context) {
	id := c.Param("id")

	post, err := bindPost(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := pc.store.Insert(c.Request.Context(), store.KindPost, id, post); err != nil {
		if errors.Is(err, store.ErrExists) {
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Post with ID %s already exists", id)})
			return
		}
		pc.internalError(c, "post.create", err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/v1/posts/{id}
func (pc *PostController) Update(c *gin.Context) {
	id := c.Param("id")

	post, err := bindPost(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if !pc.upsertOnUpdate {
		var existing models.Post
		err := pc.store.Get(c.Request.Context(), store.KindPost, id, &existing)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		if err != nil {
			pc.internalError(c, "post.update", err)
			return
		}
	}

	if err := pc.store.Upsert(c.Request.Context(), store.KindPost, id, post); err != nil {
		pc.internalError(c, "post.update", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/v1/posts/{id}
func (pc *PostController) Delete(c *gin.Context) {
	id := c.Param("id")

	err := pc.store.Delete(c.Request.Context(), store.KindPost, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete post"})
	default:
		c.JSON(http.StatusAccepted, gin.H{"message": "Post deleted successfully"})
	}
}

// List handles GET /api/v1/posts/list
func (pc *PostController) List(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}

	var posts []models.Post
	if err := pc.store.Query(c.Request.Context(), store.KindPost, nil, limit, offset, &posts); err != nil {
		pc.internalError(c, "post.list", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AppendContent handles POST /api/v1/posts/{id}/append_content
func (pc *PostController) AppendContent(c *gin.Context) {
	pc.concatContent(c, false)
}

// PrependContent handles POST /api/v1/posts/{id}/prepend_content
func (pc *PostController) PrependContent(c *gin.Context) {
	pc.concatContent(c, true)
}

func (pc *PostController) concatContent(c *gin.Context, prepend bool) {
	id := c.Param("id")

	text := defaultAppendText
	if prepend {
		text = defaultPrependText
	}
	var body struct {
		Text *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err == nil && body.Text != nil {
		text = *body.Text
	}

	var post models.Post
	err := pc.store.Get(c.Request.Context(), store.KindPost, id, &post)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		pc.internalError(c, "post.concat", err)
		return
	}

	if prepend {
		post.Content = text + post.Content
	} else {
		post.Content = post.Content + text
	}

	if err := pc.store.Upsert(c.Request.Context(), store.KindPost, id, post); err != nil {
		pc.internalError(c, "post.concat", err)
		return
	}

	c.JSON(http.StatusOK, post)
}
