package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionLike     InteractionType = "like"
	InteractionDownload InteractionType = "download"
)

// UserInteraction is an append-only event keyed by a client-side device
// identifier. Likes carry a partial unique index on
// (wallpaper_id, session_id) so duplicate toggles cannot double-insert.
type UserInteraction struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	WallpaperID string          `gorm:"type:uuid;not null;index" json:"wallpaper_id"`
	Type        InteractionType `gorm:"column:interaction_type;type:varchar(20);not null" json:"interaction_type"`
	SessionID   string          `gorm:"not null;index" json:"session_id"`
	IPAddress   string          `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (i *UserInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

func (UserInteraction) TableName() string {
	return "user_interactions"
}
