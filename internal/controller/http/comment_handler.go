package http

import (
	"errors"
	"net/http"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// ListComments godoc
// @Summary      List approved comments for a post
// @Description  Returns approved comments threaded one level deep via parent_id.
// @Tags         blog
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")

	comments, err := h.commentUseCase.ListApproved(postID)
	if err != nil {
		h.logger.Error("Failed to list comments post=%s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

type SubmitCommentRequest struct {
	ParentID    *string `json:"parent_id"`
	AuthorName  string  `json:"author_name"`
	AuthorEmail string  `json:"author_email"`
	Content     string  `json:"content"`
	Website     string  `json:"website"`
}

// SubmitComment godoc
// @Summary      Submit a comment
// @Description  Screens the submission and stores it as pending moderation. The website field must stay empty; it exists to catch bots.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body SubmitCommentRequest true "Comment fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/posts/{id}/comments [post]
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	postID := c.Param("id")

	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, violation, err := h.commentUseCase.Submit(usecase.CommentSubmission{
		PostID:      postID,
		ParentID:    req.ParentID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
		Website:     req.Website,
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if violation != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": violation.Message})
		return
	}
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if errors.Is(err, usecase.ErrInvalidParent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment does not belong to this post"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to submit comment post=%s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      comment.ID,
		"status":  comment.Status,
		"message": "Comment submitted and awaiting moderation",
	})
}

// ListModerationQueue godoc
// @Summary      List comments by moderation status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Comment status" Enums(pending, approved, rejected, spam) default(pending)
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/comments [get]
func (h *CommentHandler) ListModerationQueue(c *gin.Context) {
	status, ok := parseCommentStatus(c.DefaultQuery("status", string(entity.CommentPending)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown comment status"})
		return
	}

	comments, err := h.commentUseCase.ListForModeration(status, intQuery(c, "limit", defaultListLimit), intQuery(c, "offset", 0))
	if err != nil {
		h.logger.Error("Failed to list moderation queue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

type ModerateCommentRequest struct {
	Status string `json:"status" binding:"required"`
}

// ModerateComment godoc
// @Summary      Set a comment's moderation status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body ModerateCommentRequest true "Target status (approved, rejected or spam)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/comments/{id} [patch]
func (h *CommentHandler) ModerateComment(c *gin.Context) {
	id := c.Param("id")

	var req ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.commentUseCase.Moderate(id, entity.CommentStatus(req.Status))
	if errors.Is(err, usecase.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to moderate comment %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated"})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id := c.Param("id")

	err := h.commentUseCase.Delete(id)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete comment %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
