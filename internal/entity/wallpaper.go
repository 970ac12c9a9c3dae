package entity

import "time"

type Wallpaper struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	MediumURL    string    `json:"medium_url"`
	LargeURL     string    `json:"large_url"`
	OriginalURL  string    `json:"original_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionLike     InteractionType = "like"
	InteractionDownload InteractionType = "download"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionLike, InteractionDownload:
		return true
	}
	return false
}

type Interaction struct {
	ID          string          `json:"id"`
	WallpaperID string          `json:"wallpaper_id"`
	Type        InteractionType `json:"interaction_type"`
	SessionID   string          `json:"session_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
