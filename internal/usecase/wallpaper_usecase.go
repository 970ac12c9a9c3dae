package usecase

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/slug"
	"wallpaperhub/internal/stats"
	"wallpaperhub/pkg/logger"
	"wallpaperhub/pkg/models"
	"wallpaperhub/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectStorage is the slice of the storage client the wallpaper flows
// need.
type ObjectStorage interface {
	GetObject(key string) (*s3.Object, error)
	UploadFile(key string, reader io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// WallpaperView is a wallpaper with its canonical slug and
// display-ready stats attached.
type WallpaperView struct {
	entity.Wallpaper
	Slug  string        `json:"slug"`
	Stats stats.Display `json:"stats"`
}

// DownloadResult carries either a streamable object or, when the
// storage fetch failed, the public URL to redirect to instead.
type DownloadResult struct {
	Wallpaper   *entity.Wallpaper
	Object      *s3.Object
	Filename    string
	FallbackURL string
}

type SearchResult struct {
	Wallpapers []*WallpaperView `json:"wallpapers"`
	TotalCount int64            `json:"totalCount"`
	HasMore    bool             `json:"hasMore"`
}

// PublishInput is an admin upload: the image stream plus its catalog
// metadata.
type PublishInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Filename    string
	ContentType string
	File        io.Reader
}

type WallpaperUseCase interface {
	List(filter persistent.ListFilter) ([]*WallpaperView, error)
	Search(filter persistent.SearchFilter) (*SearchResult, error)
	GetBySlug(requested string) (*WallpaperView, string, error)
	PrepareDownload(id string) (*DownloadResult, error)
	Publish(input PublishInput) (*WallpaperView, error)
	Remove(id string) error
}

type wallpaperUseCase struct {
	wallpaperRepo persistent.WallpaperRepository
	aggregator    *stats.Aggregator
	storage       ObjectStorage
	logger        *logger.Logger
}

func NewWallpaperUseCase(
	wallpaperRepo persistent.WallpaperRepository,
	aggregator *stats.Aggregator,
	storage ObjectStorage,
	log *logger.Logger,
) WallpaperUseCase {
	return &wallpaperUseCase{
		wallpaperRepo: wallpaperRepo,
		aggregator:    aggregator,
		storage:       storage,
		logger:        log,
	}
}

func (uc *wallpaperUseCase) List(filter persistent.ListFilter) ([]*WallpaperView, error) {
	wallpapers, err := uc.wallpaperRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallpapers: %w", err)
	}
	return uc.attachStats(wallpapers)
}

func (uc *wallpaperUseCase) Search(filter persistent.SearchFilter) (*SearchResult, error) {
	wallpapers, total, err := uc.wallpaperRepo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search wallpapers: %w", err)
	}

	views, err := uc.attachStats(wallpapers)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Wallpapers: views,
		TotalCount: total,
		HasMore:    int64(filter.Offset+len(wallpapers)) < total,
	}, nil
}

// GetBySlug resolves a requested slug through its short-ID suffix and
// returns the item together with its canonical slug. Callers must
// redirect when the canonical slug differs from the requested one;
// stale links are never served in place.
func (uc *wallpaperUseCase) GetBySlug(requested string) (*WallpaperView, string, error) {
	if !slug.IsValidFormat(requested) {
		return nil, "", ErrNotFound
	}

	suffix, ok := slug.ExtractSuffix(requested)
	if !ok {
		return nil, "", ErrNotFound
	}

	wallpaper, err := uc.wallpaperRepo.FindBySuffix(suffix)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrNotFound
	}
	if errors.Is(err, persistent.ErrAmbiguousSuffix) {
		uc.logger.Warn("Ambiguous short-ID suffix %q requested via slug %q", suffix, requested)
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve slug: %w", err)
	}

	canonical := slug.Encode(wallpaper.Category, wallpaper.Title, wallpaper.ID)

	views, err := uc.attachStats([]*entity.Wallpaper{wallpaper})
	if err != nil {
		return nil, "", err
	}
	return views[0], canonical, nil
}

// PrepareDownload fetches the original image from object storage. When
// the fetch fails the caller redirects to the public URL instead of
// failing the download.
func (uc *wallpaperUseCase) PrepareDownload(id string) (*DownloadResult, error) {
	wallpaper, err := uc.wallpaperRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wallpaper: %w", err)
	}

	sourceURL := wallpaper.OriginalURL
	if sourceURL == "" {
		sourceURL = wallpaper.ImageURL
	}

	result := &DownloadResult{
		Wallpaper:   wallpaper,
		Filename:    downloadFilename(wallpaper.Title, sourceURL),
		FallbackURL: sourceURL,
	}

	obj, err := uc.storage.GetObject(s3.KeyFromURL(sourceURL))
	if err != nil {
		uc.logger.Warn("Storage fetch failed for wallpaper %s, falling back to redirect: %v", id, err)
		return result, nil
	}
	result.Object = obj
	return result, nil
}

// Publish uploads the image under a fresh UUID key and catalogs it.
// The stored object key is {uuid}{ext} so the public URL doubles as
// the storage key for later downloads and removal.
func (uc *wallpaperUseCase) Publish(input PublishInput) (*WallpaperView, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		input.File == nil {
		return nil, ErrInvalidWallpaperInput
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "image/" + strings.TrimPrefix(ext, ".")
	}

	key := uuid.New().String() + ext
	publicURL, err := uc.storage.UploadFile(key, input.File, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload wallpaper image: %w", err)
	}

	wallpaper := &entity.Wallpaper{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Tags:        input.Tags,
		ImageURL:    publicURL,
		OriginalURL: publicURL,
	}
	if err := uc.wallpaperRepo.Create(wallpaper); err != nil {
		return nil, fmt.Errorf("failed to catalog wallpaper: %w", err)
	}

	views, err := uc.attachStats([]*entity.Wallpaper{wallpaper})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Remove deletes the catalog record and then the stored object. A
// failed object delete is logged only; the record is already gone.
func (uc *wallpaperUseCase) Remove(id string) error {
	wallpaper, err := uc.wallpaperRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load wallpaper: %w", err)
	}

	if err := uc.wallpaperRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete wallpaper: %w", err)
	}

	sourceURL := wallpaper.OriginalURL
	if sourceURL == "" {
		sourceURL = wallpaper.ImageURL
	}
	if err := uc.storage.DeleteFile(s3.KeyFromURL(sourceURL)); err != nil {
		uc.logger.Warn("Failed to delete stored object for wallpaper %s: %v", id, err)
	}
	return nil
}

func (uc *wallpaperUseCase) attachStats(wallpapers []*entity.Wallpaper) ([]*WallpaperView, error) {
	ids := make([]string, len(wallpapers))
	for i, w := range wallpapers {
		ids[i] = w.ID
	}

	var rows []models.WallpaperStat
	if uc.aggregator.Mode() == stats.ModeReal {
		var err error
		rows, err = uc.wallpaperRepo.StatsFor(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
	}
	attached := uc.aggregator.Attach(ids, rows)

	views := make([]*WallpaperView, len(wallpapers))
	for i, w := range wallpapers {
		views[i] = &WallpaperView{
			Wallpaper: *w,
			Slug:      slug.Encode(w.Category, w.Title, w.ID),
			Stats:     stats.Render(attached[w.ID]),
		}
	}
	return views, nil
}

func downloadFilename(title, sourceURL string) string {
	ext := path.Ext(sourceURL)
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	name := slug.Slugify(title)
	if name == "" {
		name = "wallpaper"
	}
	return name + strings.ToLower(ext)
}
