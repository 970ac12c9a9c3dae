package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Wallpaper struct {
	ID           string         `gorm:"type:uuid;primary_key" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	Category     string         `gorm:"index" json:"category"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL     string         `gorm:"not null" json:"image_url"`
	ThumbnailURL string         `json:"thumbnail_url"`
	MediumURL    string         `json:"medium_url"`
	LargeURL     string         `json:"large_url"`
	OriginalURL  string         `json:"original_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Stats *WallpaperStat `gorm:"foreignKey:WallpaperID" json:"-"`
}

func (w *Wallpaper) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
