package http

import (
	"errors"
	"net/http"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Param        category query string false "Category slug"
// @Param        tag query string false "Tag slug"
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	filter := persistent.PostFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Limit:    intQuery(c, "limit", defaultListLimit),
		Offset:   intQuery(c, "offset", 0),
	}

	posts, err := h.blogUseCase.ListPublished(filter)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPost godoc
// @Summary      Get a published blog post
// @Description  Fetches a published post by UUID or slug. The view counter is updated asynchronously.
// @Tags         blog
// @Produce      json
// @Param        id path string true "Post ID or slug"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts/{id} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	idOrSlug := c.Param("id")

	post, err := h.blogUseCase.GetPublished(idOrSlug)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to load post %q: %v", idOrSlug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost godoc
// @Summary      Create a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.PostInput true "Post fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var input usecase.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.Create(input)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost godoc
// @Summary      Update a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body usecase.PostInput true "Post fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var input usecase.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.Update(c.Param("id"), input)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost godoc
// @Summary      Delete a blog post and its comments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	err := h.blogUseCase.Delete(id)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete post %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *BlogHandler) writePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPostInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		h.logger.Error("Failed to save post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
	}
}

// status helper shared by comment moderation endpoints
func parseCommentStatus(raw string) (entity.CommentStatus, bool) {
	status := entity.CommentStatus(raw)
	switch status {
	case entity.CommentPending, entity.CommentApproved, entity.CommentRejected, entity.CommentSpam:
		return status, true
	}
	return "", false
}
