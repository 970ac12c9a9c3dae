// Package stats attaches display-ready interaction counters to
// wallpaper listings without per-item queries.
package stats

import (
	"fmt"

	"wallpaperhub/pkg/models"
)

// FeaturedViewThreshold marks an item as featured once its view count
// passes it. Display hint only, never persisted.
const FeaturedViewThreshold = 100

type Counts struct {
	Views     int64 `json:"views"`
	Likes     int64 `json:"likes"`
	Downloads int64 `json:"downloads"`
}

// Stats is a tagged counter set: real numbers derived from the
// interaction log, or deterministic estimates for deployments without
// traffic history. The tag keeps the two from being mixed per item.
type Stats struct {
	Counts    Counts `json:"counts"`
	Estimated bool   `json:"estimated"`
}

func Real(c Counts) Stats {
	return Stats{Counts: c}
}

// Estimated derives plausible placeholder counts from a hash of the
// wallpaper ID, so the same item shows the same numbers on every
// request without persisting anything.
func Estimated(wallpaperID string) Stats {
	seed := int64(hashCode(wallpaperID))
	if seed < 0 {
		seed = -seed
	}

	downloads := 5000 + seed%50000
	likes := 1000 + (seed/7)%10000
	views := downloads*3 + seed%1000

	return Stats{
		Counts:    Counts{Views: views, Likes: likes, Downloads: downloads},
		Estimated: true,
	}
}

// hashCode mirrors Java's String.hashCode: h = 31*h + c with 32-bit
// wraparound, which is what the frontend used to seed mock stats.
func hashCode(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

// Display is what list endpoints render per item.
type Display struct {
	Views     string `json:"views"`
	Likes     string `json:"likes"`
	Downloads string `json:"downloads"`
	Featured  bool   `json:"featured"`
	Estimated bool   `json:"estimated"`
}

// Mode selects where counters come from for the whole deployment.
type Mode string

const (
	ModeReal      Mode = "real"
	ModeEstimated Mode = "estimated"
)

// Aggregator merges bulk-loaded stat rows into wallpaper listings.
type Aggregator struct {
	mode Mode
}

func NewAggregator(mode Mode) *Aggregator {
	if mode != ModeEstimated {
		mode = ModeReal
	}
	return &Aggregator{mode: mode}
}

func (a *Aggregator) Mode() Mode {
	return a.mode
}

// For returns the stats for a single wallpaper given its bulk-loaded
// row (nil when none exists yet).
func (a *Aggregator) For(wallpaperID string, row *models.WallpaperStat) Stats {
	if a.mode == ModeEstimated {
		return Estimated(wallpaperID)
	}
	if row == nil {
		return Real(Counts{})
	}
	return Real(Counts{Views: row.Views, Likes: row.Likes, Downloads: row.Downloads})
}

// Attach builds a wallpaper-id keyed map of stats for a listing in one
// pass over the bulk result set, defaulting absent rows to zero counts.
func (a *Aggregator) Attach(wallpaperIDs []string, rows []models.WallpaperStat) map[string]Stats {
	byID := make(map[string]*models.WallpaperStat, len(rows))
	for i := range rows {
		byID[rows[i].WallpaperID] = &rows[i]
	}

	out := make(map[string]Stats, len(wallpaperIDs))
	for _, id := range wallpaperIDs {
		out[id] = a.For(id, byID[id])
	}
	return out
}

// Render formats a stat set for display.
func Render(s Stats) Display {
	return Display{
		Views:     FormatCount(s.Counts.Views),
		Likes:     FormatCount(s.Counts.Likes),
		Downloads: FormatCount(s.Counts.Downloads),
		Featured:  s.Counts.Views > FeaturedViewThreshold,
		Estimated: s.Estimated,
	}
}

// FormatCount abbreviates large counters: 1500 -> "1.5K",
// 2300000 -> "2.3M". One decimal place, truncated rather than rounded.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%d.%dM", n/1_000_000, (n%1_000_000)/100_000)
	case n >= 1_000:
		return fmt.Sprintf("%d.%dK", n/1_000, (n%1_000)/100)
	default:
		return fmt.Sprintf("%d", n)
	}
}
