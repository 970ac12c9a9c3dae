package http

import (
	"errors"
	"net/http"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type LikeRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=like unlike"`
}

// LikeWallpaper godoc
// @Summary      Like or unlike a wallpaper
// @Description  Toggles the like state for the device. Repeating the same action reports the current state as success rather than failing.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Wallpaper ID"
// @Param        request body LikeRequest true "Device and action"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /wallpapers/{id}/like [post]
func (h *InteractionHandler) LikeWallpaper(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallpaper ID"})
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.interactionUseCase.ToggleLike(id, req.DeviceID, c.ClientIP(), req.Action == "like")
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to toggle like wallpaper=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"liked":       result.Liked,
		"total_likes": result.TotalLikes,
	})
}

type InteractionRequest struct {
	WallpaperID     string `json:"wallpaper_id" binding:"required"`
	InteractionType string `json:"interaction_type" binding:"required"`
	SessionID       string `json:"session_id" binding:"required"`
}

// RecordInteraction godoc
// @Summary      Record an interaction
// @Description  Appends a view, like or download event for a wallpaper and returns the refreshed counters.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        request body InteractionRequest true "Interaction to record"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions [post]
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := uuid.Parse(req.WallpaperID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallpaper ID"})
		return
	}

	kind := entity.InteractionType(req.InteractionType)
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown interaction type"})
		return
	}

	interaction, counts, err := h.interactionUseCase.Record(req.WallpaperID, kind, req.SessionID, c.ClientIP())
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to record interaction wallpaper=%s type=%s: %v", req.WallpaperID, kind, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record interaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"interaction": interaction,
		"stats":       counts,
	})
}
