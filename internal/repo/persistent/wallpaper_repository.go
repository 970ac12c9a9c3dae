package persistent

import (
	"errors"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/stats"
	"wallpaperhub/pkg/models"

	"gorm.io/gorm"
)

// ErrAmbiguousSuffix is returned when a short-ID suffix matches more
// than one wallpaper. The resolver refuses to guess.
var ErrAmbiguousSuffix = errors.New("short id suffix matches multiple wallpapers")

type ListFilter struct {
	Category string
	Search   string
	Featured bool
	Limit    int
}

type SearchFilter struct {
	Query       string
	Category    string
	Resolution  string
	Orientation string
	Color       string
	Sort        string
	Limit       int
	Offset      int
}

type WallpaperRepository interface {
	Create(wallpaper *entity.Wallpaper) error
	Delete(id string) error
	GetByID(id string) (*entity.Wallpaper, error)
	FindBySuffix(suffix string) (*entity.Wallpaper, error)
	List(filter ListFilter) ([]*entity.Wallpaper, error)
	Search(filter SearchFilter) ([]*entity.Wallpaper, int64, error)
	StatsFor(wallpaperIDs []string) ([]models.WallpaperStat, error)
	StatFor(wallpaperID string) (*models.WallpaperStat, error)
}

type wallpaperRepository struct {
	db *gorm.DB
}

func NewWallpaperRepository(db *gorm.DB) WallpaperRepository {
	return &wallpaperRepository{db: db}
}

func (r *wallpaperRepository) Create(wallpaper *entity.Wallpaper) error {
	m := models.Wallpaper{
		ID:           wallpaper.ID,
		Title:        wallpaper.Title,
		Description:  wallpaper.Description,
		Category:     wallpaper.Category,
		Tags:         wallpaper.Tags,
		ImageURL:     wallpaper.ImageURL,
		ThumbnailURL: wallpaper.ThumbnailURL,
		MediumURL:    wallpaper.MediumURL,
		LargeURL:     wallpaper.LargeURL,
		OriginalURL:  wallpaper.OriginalURL,
	}
	if err := r.db.Create(&m).Error; err != nil {
		return err
	}
	wallpaper.ID = m.ID
	wallpaper.CreatedAt = m.CreatedAt
	wallpaper.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *wallpaperRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Wallpaper{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wallpaperRepository) GetByID(id string) (*entity.Wallpaper, error) {
	var m models.Wallpaper
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToWallpaperEntity(&m), nil
}

// FindBySuffix locates the wallpaper whose full identifier ends with
// the given short-ID suffix. Two candidates are fetched so an
// ambiguous suffix can be reported instead of silently picking one.
func (r *wallpaperRepository) FindBySuffix(suffix string) (*entity.Wallpaper, error) {
	var candidates []models.Wallpaper
	err := r.db.Where("id::text LIKE ?", "%"+suffix).Limit(2).Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return ToWallpaperEntity(&candidates[0]), nil
	default:
		return nil, ErrAmbiguousSuffix
	}
}

func (r *wallpaperRepository) List(filter ListFilter) ([]*entity.Wallpaper, error) {
	query := r.db.Model(&models.Wallpaper{}).Order("wallpapers.created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", like, like)
	}
	if filter.Featured {
		query = query.
			Joins("INNER JOIN wallpaper_stats ON wallpaper_stats.wallpaper_id = wallpapers.id").
			Where("wallpaper_stats.views > ?", stats.FeaturedViewThreshold)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.Wallpaper
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	wallpapers := make([]*entity.Wallpaper, len(rows))
	for i := range rows {
		wallpapers[i] = ToWallpaperEntity(&rows[i])
	}
	return wallpapers, nil
}

func (r *wallpaperRepository) Search(filter SearchFilter) ([]*entity.Wallpaper, int64, error) {
	query := r.db.Model(&models.Wallpaper{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", like, like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	// Resolution, orientation and color are curated as tags on upload,
	// so these filters match against the tag set.
	for _, tag := range []string{filter.Resolution, filter.Orientation, filter.Color} {
		if tag != "" {
			query = query.Where("? = ANY(tags)", tag)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "popular":
		query = query.
			Joins("LEFT JOIN wallpaper_stats ON wallpaper_stats.wallpaper_id = wallpapers.id").
			Order("COALESCE(wallpaper_stats.views, 0) DESC")
	case "oldest":
		query = query.Order("wallpapers.created_at ASC")
	default:
		query = query.Order("wallpapers.created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var rows []models.Wallpaper
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	wallpapers := make([]*entity.Wallpaper, len(rows))
	for i := range rows {
		wallpapers[i] = ToWallpaperEntity(&rows[i])
	}
	return wallpapers, total, nil
}

// StatsFor bulk-loads stat rows for a listing so stats can be attached
// without per-item queries.
func (r *wallpaperRepository) StatsFor(wallpaperIDs []string) ([]models.WallpaperStat, error) {
	if len(wallpaperIDs) == 0 {
		return nil, nil
	}
	var rows []models.WallpaperStat
	if err := r.db.Where("wallpaper_id IN ?", wallpaperIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wallpaperRepository) StatFor(wallpaperID string) (*models.WallpaperStat, error) {
	var row models.WallpaperStat
	err := r.db.Where("wallpaper_id = ?", wallpaperID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
