package persistent

import (
	"time"

	"wallpaperhub/internal/entity"
	"wallpaperhub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	Append(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, error)
	CreateLike(wallpaperID, sessionID, ip string) (created bool, err error)
	DeleteLike(wallpaperID, sessionID string) (removed bool, err error)
	HasLiked(wallpaperID, sessionID string) (bool, error)
	CountByType(wallpaperID string, kind entity.InteractionType) (int64, error)
	UpsertStat(wallpaperID string, kind entity.InteractionType, count int64) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Append(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, error) {
	row := &models.UserInteraction{
		ID:          uuid.New().String(),
		WallpaperID: wallpaperID,
		Type:        models.InteractionType(kind),
		SessionID:   sessionID,
		IPAddress:   ip,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return ToInteractionEntity(row), nil
}

// CreateLike inserts a like event backed by the partial unique index on
// (wallpaper_id, session_id). A conflicting insert is a no-op, which
// closes the check-then-insert race without a transaction; created
// reports whether this call added the row.
func (r *interactionRepository) CreateLike(wallpaperID, sessionID, ip string) (bool, error) {
	row := &models.UserInteraction{
		ID:          uuid.New().String(),
		WallpaperID: wallpaperID,
		Type:        models.InteractionLike,
		SessionID:   sessionID,
		IPAddress:   ip,
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *interactionRepository) DeleteLike(wallpaperID, sessionID string) (bool, error) {
	result := r.db.
		Where("wallpaper_id = ? AND session_id = ? AND interaction_type = ?", wallpaperID, sessionID, models.InteractionLike).
		Delete(&models.UserInteraction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *interactionRepository) HasLiked(wallpaperID, sessionID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserInteraction{}).
		Where("wallpaper_id = ? AND session_id = ? AND interaction_type = ?", wallpaperID, sessionID, models.InteractionLike).
		Count(&count).Error
	return count > 0, err
}

// CountByType derives a counter from the event log. The log is the
// source of truth; the wallpaper_stats row is only a denormalized copy.
func (r *interactionRepository) CountByType(wallpaperID string, kind entity.InteractionType) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserInteraction{}).
		Where("wallpaper_id = ? AND interaction_type = ?", wallpaperID, string(kind)).
		Count(&count).Error
	return count, err
}

// UpsertStat seeds the stats row on first interaction, or updates just
// the counter for the given kind and bumps updated_at.
func (r *interactionRepository) UpsertStat(wallpaperID string, kind entity.InteractionType, count int64) error {
	column := statColumn(kind)

	row := &models.WallpaperStat{
		ID:          uuid.New().String(),
		WallpaperID: wallpaperID,
		UpdatedAt:   time.Now(),
	}
	switch kind {
	case entity.InteractionView:
		row.Views = count
	case entity.InteractionLike:
		row.Likes = count
	case entity.InteractionDownload:
		row.Downloads = count
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallpaper_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       count,
			"updated_at": time.Now(),
		}),
	}).Create(row).Error
}

func statColumn(kind entity.InteractionType) string {
	switch kind {
	case entity.InteractionLike:
		return "likes"
	case entity.InteractionDownload:
		return "downloads"
	default:
		return "views"
	}
}
