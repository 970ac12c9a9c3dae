package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WallpaperStat is the denormalized counter row, created lazily on the
// first interaction. Counts are recomputed from user_interactions rows,
// never incremented in place.
type WallpaperStat struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	WallpaperID string    `gorm:"type:uuid;not null;uniqueIndex" json:"wallpaper_id"`
	Views       int64     `gorm:"default:0" json:"views"`
	Likes       int64     `gorm:"default:0" json:"likes"`
	Downloads   int64     `gorm:"default:0" json:"downloads"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *WallpaperStat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (WallpaperStat) TableName() string {
	return "wallpaper_stats"
}
