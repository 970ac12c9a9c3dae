package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/usecase"
	"wallpaperhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 20

type WallpaperHandler struct {
	wallpaperUseCase   usecase.WallpaperUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewWallpaperHandler(wallpaperUseCase usecase.WallpaperUseCase, interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *WallpaperHandler {
	return &WallpaperHandler{
		wallpaperUseCase:   wallpaperUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// ListWallpapers godoc
// @Summary      List wallpapers
// @Description  List wallpapers with display-ready stats, optionally filtered by category, featured flag or a search term.
// @Tags         wallpapers
// @Produce      json
// @Param        category query string false "Category slug"
// @Param        featured query bool false "Only wallpapers above the featured view threshold"
// @Param        search query string false "Search term matched against title and tags"
// @Param        limit query int false "Maximum number of items" default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /wallpapers [get]
func (h *WallpaperHandler) ListWallpapers(c *gin.Context) {
	filter := persistent.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Limit:    intQuery(c, "limit", defaultListLimit),
	}

	wallpapers, err := h.wallpaperUseCase.List(filter)
	if err != nil {
		h.logger.Error("Failed to list wallpapers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wallpapers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallpapers": wallpapers,
		"count":      len(wallpapers),
	})
}

// SearchWallpapers godoc
// @Summary      Search wallpapers
// @Description  Full search over titles and tags with pagination, sorting and tag-backed resolution/orientation/color filters.
// @Tags         wallpapers
// @Produce      json
// @Param        q query string false "Search query"
// @Param        category query string false "Category slug"
// @Param        resolution query string false "Resolution tag, e.g. 4k"
// @Param        orientation query string false "Orientation tag (portrait or landscape)"
// @Param        color query string false "Dominant color tag"
// @Param        sort query string false "Sort order" Enums(newest, oldest, popular) default(newest)
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /search [get]
func (h *WallpaperHandler) SearchWallpapers(c *gin.Context) {
	filter := persistent.SearchFilter{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		Resolution:  c.Query("resolution"),
		Orientation: c.Query("orientation"),
		Color:       c.Query("color"),
		Sort:        c.DefaultQuery("sort", "newest"),
		Limit:       intQuery(c, "limit", defaultListLimit),
		Offset:      intQuery(c, "offset", 0),
	}

	result, err := h.wallpaperUseCase.Search(filter)
	if err != nil {
		h.logger.Error("Failed to search wallpapers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallpapers": result.Wallpapers,
		"totalCount": result.TotalCount,
		"hasMore":    result.HasMore,
		"query":      filter.Query,
		"filters": gin.H{
			"category":    filter.Category,
			"resolution":  filter.Resolution,
			"orientation": filter.Orientation,
			"color":       filter.Color,
			"sort":        filter.Sort,
		},
	})
}

// GetWallpaper godoc
// @Summary      Get a wallpaper by slug
// @Description  Resolves the slug through its short-ID suffix. Stale slugs (e.g. after a title edit) redirect permanently to the canonical slug.
// @Tags         wallpapers
// @Produce      json
// @Param        id path string true "Wallpaper slug"
// @Param        device_id query string false "Client session identifier, used for the liked flag and view tracking"
// @Success      200  {object}  map[string]interface{}
// @Success      301  {string}  string "Redirect to canonical slug"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /wallpapers/{id} [get]
func (h *WallpaperHandler) GetWallpaper(c *gin.Context) {
	requested := c.Param("id")

	view, canonical, err := h.wallpaperUseCase.GetBySlug(requested)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to resolve slug %q: %v", requested, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wallpaper"})
		return
	}

	if canonical != requested {
		c.Redirect(http.StatusMovedPermanently, "/api/v1/wallpapers/"+canonical)
		return
	}

	sessionID := c.Query("device_id")
	liked := false
	if sessionID != "" {
		liked, err = h.interactionUseCase.HasLiked(view.ID, sessionID)
		if err != nil {
			h.logger.Error("Failed to check like state wallpaper=%s: %v", view.ID, err)
			liked = false
		}
	}

	h.interactionUseCase.RecordView(view.ID, sessionID, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"wallpaper": view,
		"liked":     liked,
	})
}

// DownloadWallpaper godoc
// @Summary      Download a wallpaper
// @Description  Streams the original image as an attachment and records the download. Falls back to a redirect to the public URL when the storage fetch fails.
// @Tags         wallpapers
// @Produce      octet-stream
// @Param        id path string true "Wallpaper ID"
// @Param        device_id query string false "Client session identifier"
// @Success      200  {file}    binary
// @Success      302  {string}  string "Redirect to the public image URL"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /download/{id} [get]
func (h *WallpaperHandler) DownloadWallpaper(c *gin.Context) {
	id := c.Param("id")

	result, err := h.wallpaperUseCase.PrepareDownload(id)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to prepare download %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare download"})
		return
	}

	sessionID := c.Query("device_id")
	ip := c.ClientIP()
	go func() {
		if _, err := h.interactionUseCase.RecordDownload(id, sessionID, ip); err != nil {
			h.logger.Error("Failed to record download wallpaper=%s: %v", id, err)
		}
	}()

	if result.Object == nil {
		c.Redirect(http.StatusFound, result.FallbackURL)
		return
	}
	defer result.Object.Body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	contentType := result.Object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, result.Object.ContentLength, contentType, result.Object.Body, nil)
}

// UploadWallpaper godoc
// @Summary      Publish a wallpaper
// @Description  Uploads the image to object storage and catalogs it. Tags are comma-separated.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Wallpaper image"
// @Param        title formData string true "Title"
// @Param        category formData string true "Category"
// @Param        description formData string false "Description"
// @Param        tags formData string false "Comma-separated tags"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     AdminAuth
// @Router       /wallpapers [post]
func (h *WallpaperHandler) UploadWallpaper(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	input := usecase.PublishInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Tags:        splitTags(c.PostForm("tags")),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
	}

	view, err := h.wallpaperUseCase.Publish(input)
	if errors.Is(err, usecase.ErrInvalidWallpaperInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, category and image are required"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to publish wallpaper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish wallpaper"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"wallpaper": view,
	})
}

// DeleteWallpaper godoc
// @Summary      Delete a wallpaper
// @Description  Removes the catalog record, its interaction history and the stored image.
// @Tags         admin
// @Produce      json
// @Param        id path string true "Wallpaper ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     AdminAuth
// @Router       /wallpapers/{id} [delete]
func (h *WallpaperHandler) DeleteWallpaper(c *gin.Context) {
	id := c.Param("id")

	err := h.wallpaperUseCase.Remove(id)
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete wallpaper %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wallpaper"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// intQuery parses a non-negative integer query parameter, falling back
// to the default on absence or garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
